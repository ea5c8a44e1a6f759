package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rag-support-be/pkg/rag/evaluation"
)

// ErrorHandlerMiddleware converts errors that escape a handler into the
// uniform JSON envelope. Typed domain conditions get their proper status;
// everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, evaluation.ErrEmptyBatch):
			code = fiber.StatusBadRequest
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
