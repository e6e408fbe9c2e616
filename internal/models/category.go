package models

import (
	"errors"
	"strings"
	"time"
)

// Category represents a food category
type Category struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CategoryCreateRequest represents the data needed to create a new category
type CategoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CategoryUpdateRequest represents the data that can be updated for a category
type CategoryUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

// Validate validates category creation data
func (req *CategoryCreateRequest) Validate() error {
	return validateCategoryName(req.Name)
}

// Validate validates category update data
func (req *CategoryUpdateRequest) Validate() error {
	return validateCategoryName(req.Name)
}

// validateCategoryName validates a category name
func validateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("category name is required")
	}

	if len(trimmed) < 2 {
		return errors.New("category name must be at least 2 characters long")
	}

	if len(trimmed) > 100 {
		return errors.New("category name must be less than 100 characters")
	}

	return nil
}
