package models

import "time"

// User is an admin account for the protected management endpoints.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterUserInput is the request body for creating an admin account. The
// password lives here rather than on User, whose json tag hides it.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
