package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"food-ordering-platform/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderWithCustomer represents an order with the customer who placed it
type OrderWithCustomer struct {
	*models.Order
	CustomerName  string `json:"customer_name" db:"customer_name"`
	CustomerEmail string `json:"customer_email" db:"customer_email"`
}

// Create places a new order. Unit prices are resolved from the catalog
// inside the transaction so the order and its line items are created
// atomically against a consistent price snapshot, or not at all.
func (r *OrderRepository) Create(req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	orderID := uuid.NewString()

	items := make([]models.OrderItem, 0, len(req.Items))
	totalPrice := 0

	for _, line := range req.Items {
		var name string
		var price int
		err := tx.QueryRow("SELECT name, price FROM foods WHERE id = $1", line.FoodID).Scan(&name, &price)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, fmt.Errorf("food %s: %w", line.FoodID, models.ErrFoodNotFound)
			}
			return nil, fmt.Errorf("failed to resolve food %s: %w", line.FoodID, err)
		}

		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			FoodID:    line.FoodID,
			FoodName:  name,
			UnitPrice: price,
			Quantity:  line.Quantity,
			CreatedAt: now,
		})
		totalPrice += price * line.Quantity
	}

	_, err = tx.Exec(`
		INSERT INTO orders (id, user_id, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, req.UserID, totalPrice, models.OrderPending, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(`
			INSERT INTO order_items (id, order_id, food_id, unit_price, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.FoodID, item.UnitPrice, item.Quantity, item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	return &models.Order{
		ID:         orderID,
		UserID:     req.UserID,
		TotalPrice: totalPrice,
		Status:     models.OrderPending,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetByID retrieves an order with its line items
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	query := `
		SELECT id, user_id, total_price, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getItems([]string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	return order, nil
}

// GetByUser retrieves a user's orders newest-first with line items
func (r *OrderRepository) GetByUser(userID string) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, total_price, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	var orderIDs []string
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(orders, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetAll retrieves every order newest-first with customer details, for
// the administrative back office.
func (r *OrderRepository) GetAll() ([]*OrderWithCustomer, error) {
	query := `
		SELECT o.id, o.user_id, o.total_price, o.status, o.created_at, o.updated_at,
		       u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []*OrderWithCustomer
	var plain []*models.Order
	var orderIDs []string
	for rows.Next() {
		order := &OrderWithCustomer{Order: &models.Order{}}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.CustomerName,
			&order.CustomerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
		plain = append(plain, order.Order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(plain, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus atomically sets the order status. The last writer wins;
// no optimistic-concurrency token is used.
func (r *OrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, user_id, total_price, status, created_at, updated_at`

	order := &models.Order{}
	err := r.db.QueryRow(query, id, status, time.Now()).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	items, err := r.getItems([]string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	return order, nil
}

// GetOrderCount returns the total number of orders
func (r *OrderRepository) GetOrderCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// attachItems loads line items for the given orders in one query
func (r *OrderRepository) attachItems(orders []*models.Order, orderIDs []string) error {
	if len(orders) == 0 {
		return nil
	}

	items, err := r.getItems(orderIDs)
	if err != nil {
		return err
	}

	for _, order := range orders {
		order.Items = items[order.ID]
	}
	return nil
}

func (r *OrderRepository) getItems(orderIDs []string) (map[string][]models.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.food_id, f.name, i.unit_price, i.quantity, i.created_at
		FROM order_items i
		JOIN foods f ON f.id = i.food_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.created_at, i.id`

	rows, err := r.db.Query(query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]models.OrderItem)
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.FoodID,
			&item.FoodName,
			&item.UnitPrice,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}

	return items, rows.Err()
}
