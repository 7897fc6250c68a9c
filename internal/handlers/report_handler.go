package handlers

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ReportHandler serves the dashboard report endpoints.
type ReportHandler struct {
	service *services.ReportService
	log     *logrus.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reports := router.Group("/reports")
	reports.Get("/summary", h.HandleSummary)
}

// HandleSummary returns the inventory summary report.
func (h *ReportHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return respondError(c, h.log, err, "Failed to build inventory report")
	}
	return c.JSON(summary)
}
