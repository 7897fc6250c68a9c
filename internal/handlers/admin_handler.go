package handlers

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminHandler serves the JWT-protected database management endpoints.
type AdminHandler struct {
	service *services.AdminService
	log     *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the admin routes on the given (already protected)
// router group.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/seed", h.HandleSeed)
	router.Post("/reset", h.HandleReset)
}

// HandleSeed populates the catalog with sample data.
func (h *AdminHandler) HandleSeed(c *fiber.Ctx) error {
	created, err := h.service.Seed()
	if err != nil {
		return respondError(c, h.log, err, "Failed to seed database")
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"productsCreated": created,
	})
}

// HandleReset wipes alerts, products, and categories.
func (h *AdminHandler) HandleReset(c *fiber.Ctx) error {
	if err := h.service.Reset(); err != nil {
		return respondError(c, h.log, err, "Failed to reset database")
	}
	return c.JSON(fiber.Map{"success": true})
}
