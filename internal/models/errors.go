package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Domain error taxonomy. Repositories translate store errors into these
// sentinels; handlers map them onto HTTP status codes.
var (
	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName means a unique-name constraint was violated.
	ErrDuplicateName = errors.New("name already exists")
)

// ValidationError reports missing or malformed input fields before any
// mutation happens. Details maps field name to a human-readable message.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for field, msg := range e.Details {
		parts = append(parts, field+": "+msg)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{
		Message: "invalid input",
		Details: map[string]string{field: msg},
	}
}

// WrapValidatorError converts go-playground/validator output into the domain
// ValidationError with a field-level detail map.
func WrapValidatorError(err error) *ValidationError {
	ve := &ValidationError{Message: "invalid input", Details: map[string]string{}}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Message = err.Error()
		return ve
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			ve.Details[field] = fmt.Sprintf("%s is required", field)
		case "gt":
			ve.Details[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "gte":
			ve.Details[field] = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "min":
			ve.Details[field] = fmt.Sprintf("%s must not be shorter than %s", field, fe.Param())
		case "max":
			ve.Details[field] = fmt.Sprintf("%s must not be longer than %s", field, fe.Param())
		case "url":
			ve.Details[field] = fmt.Sprintf("%s must be a valid URL", field)
		default:
			ve.Details[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return ve
}

// NewValidator returns a validator whose error details use json field names
// (categoryId, imageUrl) instead of Go struct field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}
