package handlers

import (
	"errors"
	"strings"

	"diskon/internal/forms"

	"github.com/gofiber/fiber/v2"
)

// renderServiceError maps a service error onto an HTTP response:
// form validation failures render as a 400 with per-field messages,
// missing records as a 404, anything else as a 500.
func renderServiceError(c *fiber.Ctx, err error) error {
	var fieldErrs forms.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
	}
	if strings.Contains(err.Error(), "not found") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
