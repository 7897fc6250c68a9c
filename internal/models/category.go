package models

import "time"

// Category is a named grouping that products belong to.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
