package controller

import (
	"crowlands-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Reference endpoints return bare payloads rather than the command
// envelope; the frontend consumes them as plain collections.
type IReferenceController interface {
	RegisterRoutes(r fiber.Router)
}

type referenceController struct {
	referenceService service.IReferenceService
}

func NewReferenceController(referenceService service.IReferenceService) IReferenceController {
	return &referenceController{
		referenceService: referenceService,
	}
}

func (c *referenceController) RegisterRoutes(r fiber.Router) {
	r.Get("deities", c.ListDeities)
	r.Get("deities/:id", c.GetDeity)
	r.Get("historical-figures", c.ListFigures)
	r.Get("historical-figures/:id", c.GetFigure)
	r.Get("sacred-sites", c.ListSites)
	r.Get("sacred-sites/:id", c.GetSite)
	r.Get("rituals", c.ListRituals)
	r.Get("rituals/:id", c.GetRitual)
	r.Get("timeline", c.ListTimeline)
}

func (c *referenceController) ListDeities(ctx *fiber.Ctx) error {
	res, err := c.referenceService.ListDeities(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) GetDeity(ctx *fiber.Ctx) error {
	res, err := c.referenceService.GetDeity(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) ListFigures(ctx *fiber.Ctx) error {
	res, err := c.referenceService.ListFigures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) GetFigure(ctx *fiber.Ctx) error {
	res, err := c.referenceService.GetFigure(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) ListSites(ctx *fiber.Ctx) error {
	res, err := c.referenceService.ListSites(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) GetSite(ctx *fiber.Ctx) error {
	res, err := c.referenceService.GetSite(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) ListRituals(ctx *fiber.Ctx) error {
	res, err := c.referenceService.ListRituals(ctx.Context(), ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) GetRitual(ctx *fiber.Ctx) error {
	res, err := c.referenceService.GetRitual(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *referenceController) ListTimeline(ctx *fiber.Ctx) error {
	res, err := c.referenceService.ListTimeline(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
