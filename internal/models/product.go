package models

import "time"

// Product is a sellable inventory item. Category is attached (preloaded) on
// every read path so API responses carry the nested category object.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(36);index;not null" validate:"required"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductInput is the request body for product creation.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	CategoryID  string  `json:"categoryId" validate:"required"`
}

// UpdateProductInput carries a partial update: nil fields keep their prior
// value. Supplied fields are re-validated before anything is written.
type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,min=1"`
}
