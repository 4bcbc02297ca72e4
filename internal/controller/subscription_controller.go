package controller

import (
	"crowlands-be/internal/dto"
	"crowlands-be/internal/pkg/serverutils"
	"crowlands-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	UpgradeManual(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	Notification(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription")
	// Payment gateway callback, authenticated by signature instead of JWT.
	h.Post("notification", c.Notification)

	h.Get("status", serverutils.JwtMiddleware, c.Status)
	h.Post("upgrade-manual", serverutils.JwtMiddleware, c.UpgradeManual)
	h.Post("checkout", serverutils.JwtMiddleware, c.Checkout)
}

func (c *subscriptionController) Status(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *subscriptionController) UpgradeManual(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	// Testing backdoor: the key may arrive as a query param or in the body.
	adminKey := ctx.Query("admin_key")
	if adminKey == "" {
		var req dto.ManualUpgradeRequest
		if err := ctx.BodyParser(&req); err == nil {
			adminKey = req.AdminKey
		}
	}

	res, err := c.subscriptionService.UpgradeManual(ctx.Context(), userId, adminKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription upgraded", res))
}

func (c *subscriptionController) Checkout(ctx *fiber.Ctx) error {
	userId, err := callerId(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.Checkout(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *subscriptionController) Notification(ctx *fiber.Ctx) error {
	var req dto.MidtransNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notification payload")
	}

	if err := c.subscriptionService.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}
