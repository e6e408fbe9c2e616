package services

import (
	"testing"

	"food-ordering-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(req *models.CategoryCreateRequest) (*models.Category, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List() ([]*models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(id string, req *models.CategoryUpdateRequest) (*models.Category, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockFoodRepository is a mock implementation of FoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(req *models.FoodCreateRequest) (*models.Food, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) GetByID(id string) (*models.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) List() ([]*models.Food, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Food), args.Error(1)
}

func (m *MockFoodRepository) Update(id string, req *models.FoodUpdateRequest) (*models.Food, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodRepository) CountByCategory(categoryID string) (int, error) {
	args := m.Called(categoryID)
	return args.Int(0), args.Error(1)
}

func TestCategoryService_GetCategory_HidesInactive(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo, new(MockFoodRepository))

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1", Name: "Mains", IsActive: true}, nil)
	categoryRepo.On("GetByID", "cat-2").Return(&models.Category{ID: "cat-2", Name: "Retired", IsActive: false}, nil)

	category, err := service.GetCategory("cat-1")
	require.NoError(t, err)
	assert.Equal(t, "Mains", category.Name)

	// Soft-deleted categories read as missing.
	_, err = service.GetCategory("cat-2")
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("empty category deactivated", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		foodRepo := new(MockFoodRepository)
		service := NewCategoryService(categoryRepo, foodRepo)

		foodRepo.On("CountByCategory", "cat-1").Return(0, nil)
		categoryRepo.On("Deactivate", "cat-1").Return(nil)

		err := service.DeleteCategory("cat-1")
		assert.NoError(t, err)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("category with foods refused", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		foodRepo := new(MockFoodRepository)
		service := NewCategoryService(categoryRepo, foodRepo)

		foodRepo.On("CountByCategory", "cat-1").Return(3, nil)

		err := service.DeleteCategory("cat-1")
		assert.ErrorIs(t, err, models.ErrCategoryInUse)
		categoryRepo.AssertNotCalled(t, "Deactivate")
	})
}

func TestFoodService_Menu(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	service := NewFoodService(foodRepo)

	menu := []*models.Food{
		{ID: "food-1", Name: "Nyama Choma", Price: 1200},
		{ID: "food-2", Name: "Ugali", Price: 300},
	}
	foodRepo.On("List").Return(menu, nil)

	got, err := service.GetMenu()
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Nyama Choma", got[0].Name)
}

func TestFoodService_DeleteFood(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	service := NewFoodService(foodRepo)

	foodRepo.On("Delete", "food-1").Return(models.ErrFoodInUse)

	err := service.DeleteFood("food-1")
	assert.ErrorIs(t, err, models.ErrFoodInUse)
}
