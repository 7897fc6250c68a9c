package handlers

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	log     *logrus.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleGetCategories)
	categories.Post("/", h.HandleCreateCategory)
	categories.Put("/:id", h.HandleUpdateCategory)
	categories.Delete("/:id", h.HandleDeleteCategory)
}

type categoryRequest struct {
	Name string `json:"name"`
}

// HandleGetCategories returns all categories, name ascending.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch categories")
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a category and returns it with 201.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return respondError(c, h.log, err, "Failed to create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory renames a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := h.service.UpdateCategory(c.Params("id"), req.Name)
	if err != nil {
		return respondError(c, h.log, err, "Failed to update category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category and all its products, 204 on
// success.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, h.log, err, "Failed to delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
