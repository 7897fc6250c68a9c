package repositories

import (
	"errors"
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their category attached, name ascending.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID with the category attached.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product and reloads it so the category is attached.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Omit("Category").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return r.db.Preload("Category").First(product, "id = ?", product.ID).Error
}

// Save persists all fields of an existing product.
func (r *GORMProductRepository) Save(product *models.Product) error {
	res := r.db.Omit("Category").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return r.db.Preload("Category").First(product, "id = ?", product.ID).Error
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// FindBelowQuantity retrieves all products whose quantity is below threshold,
// category attached, name ascending.
func (r *GORMProductRepository) FindBelowQuantity(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Category").
		Where("quantity < ?", threshold).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find low-stock products: %w", err)
	}
	return products, nil
}
