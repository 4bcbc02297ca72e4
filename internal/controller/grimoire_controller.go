package controller

import (
	"crowlands-be/internal/dto"
	"crowlands-be/internal/pkg/serverutils"
	"crowlands-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGrimoireController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type grimoireController struct {
	grimoireService service.IGrimoireService
	authService     service.IAuthService
}

func NewGrimoireController(grimoireService service.IGrimoireService, authService service.IAuthService) IGrimoireController {
	return &grimoireController{
		grimoireService: grimoireService,
		authService:     authService,
	}
}

func (c *grimoireController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/grimoire")
	h.Use(serverutils.JwtMiddleware)
	h.Post("save", c.Save)
	h.Get("spells", c.List)
	h.Delete("spells/:id", c.Delete)
}

func (c *grimoireController) Save(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveSpellRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	// Save is tier-gated, so the service needs the full account record.
	user, err := c.authService.ResolveUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if user == nil {
		return &dto.UnauthorizedError{Message: "unknown account"}
	}

	res, err := c.grimoireService.Save(ctx.Context(), user, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Spell saved to grimoire", res))
}

func (c *grimoireController) List(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	res, err := c.grimoireService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *grimoireController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	spellId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return &dto.NotFoundError{Resource: "spell"}
	}

	if err := c.grimoireService.Delete(ctx.Context(), userId, spellId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Spell removed", nil))
}
