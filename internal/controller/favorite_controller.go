package controller

import (
	"crowlands-be/internal/dto"
	"crowlands-be/internal/pkg/serverutils"
	"crowlands-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type favoriteController struct {
	favoriteService service.IFavoriteService
}

func NewFavoriteController(favoriteService service.IFavoriteService) IFavoriteController {
	return &favoriteController{
		favoriteService: favoriteService,
	}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorites")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Add)
	h.Get("", c.List)
	h.Delete("", c.Remove)
}

func callerId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, &dto.UnauthorizedError{Message: "invalid token subject"}
	}
	return userId, nil
}

func (c *favoriteController) Add(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	var req dto.FavoriteRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.favoriteService.Add(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Favorite added", &req))
}

func (c *favoriteController) Remove(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	var req dto.FavoriteRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.favoriteService.Remove(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Favorite removed", &req))
}

func (c *favoriteController) List(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	res, err := c.favoriteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
