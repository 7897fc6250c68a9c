package repositories

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	Delete(id string) error
	FindBelowQuantity(threshold int) ([]models.Product, error)
}
