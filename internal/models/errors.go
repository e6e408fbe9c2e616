package models

import "errors"

// Common errors used throughout the application
var (
	ErrFoodNotFound     = errors.New("food item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrFoodInUse        = errors.New("food item has been ordered and cannot be deleted")
	ErrCategoryInUse    = errors.New("category has associated food items")
)
