package services

import (
	"strings"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/sirupsen/logrus"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *logrus.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, log *logrus.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

// GetAllCategories retrieves all categories ordered by name ascending.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory inserts a new category with the given name.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames an existing category.
func (s *CategoryService) UpdateCategory(id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.categoryRepo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category and every product referencing it in a
// single transaction.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.categoryRepo.DeleteWithProducts(id)
}
