package repositories

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
)

// UserRepository defines the interface for admin user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
