package repositories

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Save(category *models.Category) error
	// DeleteWithProducts removes every product referencing the category and
	// then the category row itself, inside a single transaction.
	DeleteWithProducts(id string) error
}
