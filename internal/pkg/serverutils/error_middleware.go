package serverutils

import (
	"errors"

	"crowlands-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates typed service errors into the status
// codes and machine-readable codes the API contract promises.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var limitErr *dto.LimitReachedError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":       false,
				"code":          fiber.StatusForbidden,
				"error":         "spell_limit_reached",
				"message":       limitErr.Error(),
				"limit":         limitErr.Limit,
				"current_count": limitErr.CurrentCount,
			})
		}

		var lockedErr *dto.FeatureLockedError
		if errors.As(err, &lockedErr) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusForbidden,
				"error":   "feature_locked",
				"message": lockedErr.Error(),
			})
		}

		var notFoundErr *dto.NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusNotFound,
				"error":   "not_found",
				"message": notFoundErr.Error(),
			})
		}

		var conflictErr *dto.ConflictError
		if errors.As(err, &conflictErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusBadRequest,
				"error":   "conflict",
				"message": conflictErr.Error(),
			})
		}

		var unauthorizedErr *dto.UnauthorizedError
		if errors.As(err, &unauthorizedErr) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusUnauthorized,
				"error":   "unauthorized",
				"message": unauthorizedErr.Error(),
			})
		}

		var upstreamErr *dto.UpstreamError
		if errors.As(err, &upstreamErr) {
			// the cause was logged at the orchestrator; only the generic
			// message crosses the boundary
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusInternalServerError,
				"error":   "upstream_failure",
				"message": upstreamErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"code":    fiberErr.Code,
				"message": fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusInternalServerError,
			"message": "internal server error",
		})
	}
}
