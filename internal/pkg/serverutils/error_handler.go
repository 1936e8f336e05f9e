package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the single "send error" boundary: every error a
// handler returns leaves the process as the standard envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.StatusCode).JSON(ErrorResponseWithData(
				apiErr.StatusCode, apiErr.Message, apiErr.Data,
			))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		// Unclassified errors are persistence or infrastructure failures.
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponseWithData(
			fiber.StatusInternalServerError, "Internal Server Error", err.Error(),
		))
	}
}
