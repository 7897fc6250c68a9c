package handlers

import (
	"errors"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps a domain error onto the HTTP taxonomy: ValidationError
// and DuplicateName are 400, NotFound is 404, everything else is logged and
// returned as a generic 500. Every failure body carries at least an "error"
// string; validation failures also carry the field-level "details" map.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error, generic string) error {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		body := fiber.Map{"error": ve.Message}
		if len(ve.Details) > 0 {
			body["details"] = ve.Details
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	case errors.Is(err, models.ErrDuplicateName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name already exists",
		})
	default:
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Errorf("%s: %v", generic, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": generic,
		})
	}
}
