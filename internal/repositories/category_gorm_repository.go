package repositories

import (
	"errors"
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories ordered by name ascending.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create inserts a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Save persists a renamed category.
func (r *GORMCategoryRepository) Save(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteWithProducts deletes all products referencing the category, then the
// category row. Both statements run in one transaction so an interrupted
// delete can never leave the two halves inconsistent.
func (r *GORMCategoryRepository) DeleteWithProducts(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products of category %s: %w", id, err)
		}
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete category %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
