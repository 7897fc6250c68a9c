package handlers

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AlertHandler handles HTTP requests for stock alerts.
type AlertHandler struct {
	service *services.AlertService
	log     *logrus.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(service *services.AlertService, log *logrus.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the stock alert routes with the Fiber app.
func (h *AlertHandler) RegisterRoutes(router fiber.Router) {
	alerts := router.Group("/stock-alerts")
	alerts.Get("/", h.HandleEvaluate)
	alerts.Put("/", h.HandleMarkRead)
	alerts.Get("/history", h.HandleHistory)
}

// HandleEvaluate runs the alert evaluator and returns the current low-stock
// products, whether or not new alerts were inserted for them.
func (h *AlertHandler) HandleEvaluate(c *fiber.Ctx) error {
	products, err := h.service.Evaluate()
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch low stock products")
	}
	return c.JSON(products)
}

// HandleMarkRead marks an alert as read. Marking an unknown or already-read
// alert still reports success.
func (h *AlertHandler) HandleMarkRead(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Alert ID is required",
		})
	}

	if err := h.service.MarkRead(req.ID); err != nil {
		return respondError(c, h.log, err, "Failed to update stock alert")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleHistory returns every alert row ever created, newest first.
func (h *AlertHandler) HandleHistory(c *fiber.Ctx) error {
	alerts, err := h.service.History()
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch stock alert history")
	}
	return c.JSON(alerts)
}
