package models

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus represents the fulfillment status of an order.
// The string values are used verbatim on the wire and in the database.
type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderConfirmed      OrderStatus = "Confirmed"
	OrderPreparing      OrderStatus = "Preparing"
	OrderReady          OrderStatus = "Ready"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// AllOrderStatuses lists every valid order status in workflow order
var AllOrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

// orderStatusTransitions is the transition-validity table. The current
// contract is permissive: an administrator may move an order to any
// valid status regardless of its current status, including out of
// Delivered and Cancelled. Restricting the workflow later is an edit to
// this table, not a logic change.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        AllOrderStatuses,
	OrderConfirmed:      AllOrderStatuses,
	OrderPreparing:      AllOrderStatuses,
	OrderReady:          AllOrderStatuses,
	OrderOutForDelivery: AllOrderStatuses,
	OrderDelivered:      AllOrderStatuses,
	OrderCancelled:      AllOrderStatuses,
}

// IsValid returns true if the status is a member of the fixed enumeration
func (s OrderStatus) IsValid() bool {
	for _, status := range AllOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the workflow permits moving from the
// current status to the target status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	allowed, ok := orderStatusTransitions[s]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Order represents a placed order. Line items and total are fixed at
// creation time; only the status changes afterwards.
type Order struct {
	ID         string      `json:"id" db:"id"`
	UserID     string      `json:"user_id" db:"user_id"`
	TotalPrice int         `json:"total_price" db:"total_price"` // in cents
	Status     OrderStatus `json:"status" db:"status"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderItem represents one line of an order with the unit price
// captured at order time.
type OrderItem struct {
	ID        string    `json:"id" db:"id"`
	OrderID   string    `json:"order_id" db:"order_id"`
	FoodID    string    `json:"food_id" db:"food_id"`
	FoodName  string    `json:"food_name" db:"food_name"`
	UnitPrice int       `json:"unit_price" db:"unit_price"` // in cents
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Subtotal returns the line total in cents
func (i *OrderItem) Subtotal() int {
	return i.UnitPrice * i.Quantity
}

// OrderLineRequest is one requested line of a new order. Unit prices
// are resolved server-side against the catalog, never taken from the
// client.
type OrderLineRequest struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

// OrderCreateRequest represents the data needed to place a new order
type OrderCreateRequest struct {
	UserID string             `json:"user_id"`
	Items  []OrderLineRequest `json:"items"`
}

// Validate validates order creation data
func (req *OrderCreateRequest) Validate() error {
	if req.UserID == "" {
		return errors.New("user id is required")
	}

	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}

	seen := make(map[string]bool, len(req.Items))
	for _, line := range req.Items {
		if line.FoodID == "" {
			return errors.New("food id is required for every order line")
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("quantity for food %s must be positive", line.FoodID)
		}
		if seen[line.FoodID] {
			return fmt.Errorf("food %s appears more than once", line.FoodID)
		}
		seen[line.FoodID] = true
	}

	return nil
}

// OrderStatusUpdateRequest represents an administrative status transition
type OrderStatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}

// Validate validates the requested status against the fixed enumeration
func (req *OrderStatusUpdateRequest) Validate() error {
	if !req.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	return nil
}

// IsPending returns true if the order has not yet been confirmed
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsDelivered returns true if the order has been delivered
func (o *Order) IsDelivered() bool {
	return o.Status == OrderDelivered
}

// IsCancelled returns true if the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderCancelled
}

// TotalPriceInCurrency returns the order total in the main currency as a float
func (o *Order) TotalPriceInCurrency() float64 {
	return float64(o.TotalPrice) / 100.0
}
