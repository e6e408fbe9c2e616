package services

import (
	"food-ordering-platform/internal/models"
)

// FoodRepository interface for food catalog data operations
type FoodRepository interface {
	Create(req *models.FoodCreateRequest) (*models.Food, error)
	GetByID(id string) (*models.Food, error)
	List() ([]*models.Food, error)
	Update(id string, req *models.FoodUpdateRequest) (*models.Food, error)
	Delete(id string) error
	CountByCategory(categoryID string) (int, error)
}

// FoodService handles food catalog business logic
type FoodService struct {
	foodRepo FoodRepository
}

// NewFoodService creates a new food service
func NewFoodService(foodRepo FoodRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

// GetMenu returns every food item on the menu
func (s *FoodService) GetMenu() ([]*models.Food, error) {
	return s.foodRepo.List()
}

// GetFood returns a single food item
func (s *FoodService) GetFood(id string) (*models.Food, error) {
	return s.foodRepo.GetByID(id)
}

// CreateFood adds a new item to the menu
func (s *FoodService) CreateFood(req *models.FoodCreateRequest) (*models.Food, error) {
	return s.foodRepo.Create(req)
}

// UpdateFood updates an existing menu item
func (s *FoodService) UpdateFood(id string, req *models.FoodUpdateRequest) (*models.Food, error) {
	return s.foodRepo.Update(id, req)
}

// DeleteFood removes a menu item. Items referenced by past orders are
// refused so order history keeps resolving.
func (s *FoodService) DeleteFood(id string) error {
	return s.foodRepo.Delete(id)
}
