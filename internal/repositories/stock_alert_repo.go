package repositories

import (
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
)

// StockAlertRepository defines the interface for stock alert data access.
type StockAlertRepository interface {
	Create(alert *models.StockAlert) error
	GetAll() ([]models.StockAlert, error)
	// UnreadProductIDs returns the set of product ids that have at least one
	// unread alert outstanding.
	UnreadProductIDs() (map[string]bool, error)
	// MarkRead flips isRead to true. Unknown ids are a silent no-op.
	MarkRead(id string) error
}
