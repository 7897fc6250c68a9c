package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports service and database connectivity status.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers the health route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth pings the database and reports connected/disconnected. The
// endpoint itself always answers 200; a broken store only flips the field.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	database := "connected"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		database = "disconnected"
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": database,
	})
}
