package services

import (
	"fmt"

	"food-ordering-platform/internal/models"
)

// CategoryRepository interface for category data operations
type CategoryRepository interface {
	Create(req *models.CategoryCreateRequest) (*models.Category, error)
	GetByID(id string) (*models.Category, error)
	List() ([]*models.Category, error)
	Update(id string, req *models.CategoryUpdateRequest) (*models.Category, error)
	Deactivate(id string) error
}

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo CategoryRepository
	foodRepo     FoodRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo CategoryRepository, foodRepo FoodRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		foodRepo:     foodRepo,
	}
}

// ListCategories returns every category, active or not, for the back
// office.
func (s *CategoryService) ListCategories() ([]*models.Category, error) {
	return s.categoryRepo.List()
}

// GetCategory returns a single active category. Soft-deleted categories
// are not visible on the public read path.
func (s *CategoryService) GetCategory(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, fmt.Errorf("category %s: %w", id, models.ErrCategoryNotFound)
	}
	return category, nil
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *models.CategoryCreateRequest) (*models.Category, error) {
	return s.categoryRepo.Create(req)
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(id string, req *models.CategoryUpdateRequest) (*models.Category, error) {
	return s.categoryRepo.Update(id, req)
}

// DeleteCategory soft-deletes a category. Categories that still have
// foods assigned are refused.
func (s *CategoryService) DeleteCategory(id string) error {
	count, err := s.foodRepo.CountByCategory(id)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category %s has %d foods assigned: %w", id, count, models.ErrCategoryInUse)
	}

	return s.categoryRepo.Deactivate(id)
}
