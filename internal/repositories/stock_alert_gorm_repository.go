package repositories

import (
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStockAlertRepository is a GORM implementation of StockAlertRepository.
type GORMStockAlertRepository struct {
	db *gorm.DB
}

// NewGORMStockAlertRepository creates a new instance of GORMStockAlertRepository.
func NewGORMStockAlertRepository(db *gorm.DB) *GORMStockAlertRepository {
	return &GORMStockAlertRepository{
		db: db,
	}
}

// Create inserts a new stock alert.
func (r *GORMStockAlertRepository) Create(alert *models.StockAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if err := r.db.Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create stock alert: %w", err)
	}
	return nil
}

// GetAll retrieves the full alert history, newest first.
func (r *GORMStockAlertRepository) GetAll() ([]models.StockAlert, error) {
	var alerts []models.StockAlert
	if err := r.db.Order("created_at desc").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to get stock alerts: %w", err)
	}
	return alerts, nil
}

// UnreadProductIDs returns the product ids with at least one unread alert.
func (r *GORMStockAlertRepository) UnreadProductIDs() (map[string]bool, error) {
	var ids []string
	err := r.db.Model(&models.StockAlert{}).
		Where("is_read = ?", false).
		Distinct("product_id").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unread alert product ids: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// MarkRead sets isRead to true for the given alert id. A missing id is not an
// error: marking an already-read or unknown alert is treated as success.
func (r *GORMStockAlertRepository) MarkRead(id string) error {
	err := r.db.Model(&models.StockAlert{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark alert %s read: %w", id, err)
	}
	return nil
}
