package services

import (
	"fmt"

	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
)

// OrderRepository interface for order data operations
type OrderRepository interface {
	Create(req *models.OrderCreateRequest) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]*models.Order, error)
	GetAll() ([]*repositories.OrderWithCustomer, error)
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, error)
}

// OrderService handles order business logic
type OrderService struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// PlaceOrder creates a new order for a user. Prices come from the
// catalog at creation time, never from the client.
func (s *OrderService) PlaceOrder(user *models.User, lines []models.OrderLineRequest) (*models.Order, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required: %w", models.ErrUnauthorized)
	}

	return s.orderRepo.Create(&models.OrderCreateRequest{
		UserID: user.ID,
		Items:  lines,
	})
}

// GetOrder returns a single order. Customers can only see their own
// orders; admins can see any.
func (s *OrderService) GetOrder(user *models.User, orderID string) (*models.Order, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required: %w", models.ErrUnauthorized)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != user.ID && !user.IsAdmin() {
		return nil, fmt.Errorf("order %s does not belong to user %s: %w", orderID, user.ID, models.ErrUnauthorized)
	}

	return order, nil
}

// ListUserOrders returns a user's order history, newest first
func (s *OrderService) ListUserOrders(user *models.User) ([]*models.Order, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required: %w", models.ErrUnauthorized)
	}

	return s.orderRepo.GetByUser(user.ID)
}

// ListAllOrders returns every order with customer details. Admin only.
func (s *OrderService) ListAllOrders(actor *models.User) ([]*repositories.OrderWithCustomer, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("admin role required: %w", models.ErrUnauthorized)
	}

	return s.orderRepo.GetAll()
}

// UpdateOrderStatus moves an order to a new status. Admin only.
func (s *OrderService) UpdateOrderStatus(actor *models.User, orderID string, status models.OrderStatus) (*models.Order, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("admin role required: %w", models.ErrUnauthorized)
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	current, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", current.Status, status, models.ErrInvalidStatus)
	}

	return s.orderRepo.UpdateStatus(orderID, status)
}
