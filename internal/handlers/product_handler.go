package handlers

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	log     *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Post("/", h.HandleCreateProduct)
	products.Get("/:id", h.HandleGetProductByID)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns all products with their category, name ascending.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch products")
	}
	return c.JSON(products)
}

// HandleGetProductByID returns a single product or 404.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch product")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product and returns it with 201.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	product, err := h.service.CreateProduct(&input)
	if err != nil {
		return respondError(c, h.log, err, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	product, err := h.service.UpdateProduct(c.Params("id"), &input)
	if err != nil {
		return respondError(c, h.log, err, "Failed to update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product, returning 204 on success.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, h.log, err, "Failed to delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
