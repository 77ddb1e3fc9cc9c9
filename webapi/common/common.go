// Package common holds shared webapi helpers: request binding and the
// domain error to HTTP status mapping.
package common

import (
	"errors"
	"strings"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		// The frontend treats a duplicate active goal like any other
		// rejected input, so conflicts stay 400 rather than 409.
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorJSON writes the flat {"error": ...} body the frontend expects.
func ErrorJSON(c *fiber.Ctx, err error) error {
	return c.Status(ErrorToStatusCode(err)).JSON(fiber.Map{
		"error": messageOf(err),
	})
}

// messageOf strips the sentinel prefix added by fmt.Errorf wrapping so
// only the human-readable detail reaches the wire.
func messageOf(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrNotFound,
		domain.ErrUnauthenticated,
	} {
		if prefix := sentinel.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an
// error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return &input, nil
}
