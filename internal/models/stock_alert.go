package models

import "time"

// LowStockThreshold is the quantity below which a product is flagged.
const LowStockThreshold = 10

// StockAlert records that a product's quantity fell below the low-stock
// threshold. Alerts are only ever created and marked read, never deleted;
// the unread subset is what the evaluator uses for deduplication.
type StockAlert struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);index;not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
