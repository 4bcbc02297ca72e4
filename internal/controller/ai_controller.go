package controller

import (
	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/pkg/serverutils"
	"crowlands-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	GenerateSpell(ctx *fiber.Ctx) error
	GenerateImage(ctx *fiber.Ctx) error
	ListArchetypes(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService   service.IAiService
	authService service.IAuthService
}

func NewAiController(aiService service.IAiService, authService service.IAuthService) IAiController {
	return &aiController{
		aiService:   aiService,
		authService: authService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	r.Get("archetypes", c.ListArchetypes)

	h := r.Group("/ai")
	h.Post("chat", c.Chat)
	h.Post("generate-spell", serverutils.OptionalJwtMiddleware, c.GenerateSpell)
	h.Post("generate-image", c.GenerateImage)
}

func (c *aiController) ListArchetypes(ctx *fiber.Ctx) error {
	return ctx.JSON(c.aiService.ListArchetypes())
}

func (c *aiController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.aiService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// resolveCaller turns an optional bearer identity into an explicit caller
// value. Every failure mode downgrades to anonymous; this endpoint never
// rejects on authentication grounds.
func (c *aiController) resolveCaller(ctx *fiber.Ctx) entity.Caller {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok || userIdStr == "" {
		return entity.AnonymousCaller()
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return entity.AnonymousCaller()
	}

	user, err := c.authService.ResolveUser(ctx.Context(), userId)
	if err != nil || user == nil {
		return entity.AnonymousCaller()
	}

	return entity.AuthenticatedCaller(user)
}

func (c *aiController) GenerateSpell(ctx *fiber.Ctx) error {
	var req dto.GenerateSpellRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	caller := c.resolveCaller(ctx)

	res, err := c.aiService.GenerateSpell(ctx.Context(), caller, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *aiController) GenerateImage(ctx *fiber.Ctx) error {
	var req dto.GenerateImageRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateImage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
