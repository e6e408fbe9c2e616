package models

import (
	"errors"
	"strings"
	"time"
)

// Food represents an orderable item on the menu
type Food struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Price        int       `json:"price" db:"price"` // in cents
	ImageURL     string    `json:"image_url" db:"image_url"`
	CategoryID   string    `json:"category_id" db:"category_id"`
	CategoryName string    `json:"category_name" db:"category_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// FoodCreateRequest represents the data needed to create a new food item
type FoodCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // in cents
	ImageURL    string `json:"image_url"`
	CategoryID  string `json:"category_id"`
}

// FoodUpdateRequest represents the data that can be updated for a food item
type FoodUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // in cents
	ImageURL    string `json:"image_url"`
	CategoryID  string `json:"category_id"`
}

// Validate validates food creation data
func (req *FoodCreateRequest) Validate() error {
	return validateFood(req.Name, req.Description, req.Price)
}

// Validate validates food update data
func (req *FoodUpdateRequest) Validate() error {
	return validateFood(req.Name, req.Description, req.Price)
}

// validateFood validates the fields shared between create and update
func validateFood(name, description string, price int) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("food name is required")
	}

	if len(name) > 200 {
		return errors.New("food name must be less than 200 characters")
	}

	if strings.TrimSpace(description) == "" {
		return errors.New("food description is required")
	}

	if price < 0 {
		return errors.New("food price cannot be negative")
	}

	// Maximum item price of $10,000 (1,000,000 cents)
	if price > 1000000 {
		return errors.New("food price cannot exceed $10,000")
	}

	return nil
}

// PriceInCurrency returns the price in the main currency as a float
func (f *Food) PriceInCurrency() float64 {
	return float64(f.Price) / 100.0
}
