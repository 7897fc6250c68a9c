package services

import (
	"errors"
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ProductService handles business logic related to products: input
// validation, the category-existence check, partial updates, and the
// best-effort low-stock alert side effects.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	alerts       *AlertService
	validate     *validator.Validate
	log          *logrus.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, alerts *AlertService, log *logrus.Logger) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		alerts:       alerts,
		validate:     models.NewValidator(),
		log:          log,
	}
}

// GetAllProducts retrieves all products with their category, name ascending.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct validates the input, verifies the category exists, and
// inserts the product. A product created below the low-stock threshold gets
// an alert as a side effect; alert failures never fail the creation.
func (s *ProductService) CreateProduct(input *models.CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, models.WrapValidatorError(err)
	}

	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewValidationError("categoryId", "category not found")
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    *input.Quantity,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.alerts.ProductCreated(product)

	return product, nil
}

// UpdateProduct applies a partial update: only the fields present in input
// are changed, and each supplied field is re-validated. A quantity decrease
// below the threshold raises an alert as a best-effort side effect.
func (s *ProductService) UpdateProduct(id string, input *models.UpdateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, models.WrapValidatorError(err)
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	oldQuantity := product.Quantity

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, models.NewValidationError("categoryId", "category not found")
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		product.CategoryID = *input.CategoryID
	}

	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}

	if input.Quantity != nil {
		s.alerts.QuantityReduced(product, oldQuantity)
	}

	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}
