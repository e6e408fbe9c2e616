package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-ordering-platform/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FoodRepository handles food catalog data operations
type FoodRepository struct {
	db *sql.DB
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *sql.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

const foodColumns = `
	f.id, f.name, f.description, f.price, f.image_url,
	COALESCE(f.category_id, ''), COALESCE(c.name, ''),
	f.created_at, f.updated_at`

func scanFood(scanner interface{ Scan(...interface{}) error }) (*models.Food, error) {
	food := &models.Food{}
	err := scanner.Scan(
		&food.ID,
		&food.Name,
		&food.Description,
		&food.Price,
		&food.ImageURL,
		&food.CategoryID,
		&food.CategoryName,
		&food.CreatedAt,
		&food.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return food, nil
}

// Create creates a new food item
func (r *FoodRepository) Create(req *models.FoodCreateRequest) (*models.Food, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()

	var categoryID interface{}
	if req.CategoryID != "" {
		categoryID = req.CategoryID
	}

	query := `
		INSERT INTO foods (id, name, description, price, image_url, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		id,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.Price,
		req.ImageURL,
		categoryID,
		now,
		now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				return nil, fmt.Errorf("food with name %q already exists: %w", req.Name, models.ErrDuplicateEntry)
			case "23503": // foreign_key_violation
				return nil, fmt.Errorf("category %s: %w", req.CategoryID, models.ErrCategoryNotFound)
			}
		}
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	return r.GetByID(id)
}

// GetByID retrieves a food item by ID with its category name
func (r *FoodRepository) GetByID(id string) (*models.Food, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM foods f
		LEFT JOIN categories c ON c.id = f.category_id
		WHERE f.id = $1`

	food, err := scanFood(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("food %s: %w", id, models.ErrFoodNotFound)
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	return food, nil
}

// List retrieves all food items newest-first with category names
func (r *FoodRepository) List() ([]*models.Food, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM foods f
		LEFT JOIN categories c ON c.id = f.category_id
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	var foods []*models.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, food)
	}

	return foods, rows.Err()
}

// Update updates a food item
func (r *FoodRepository) Update(id string, req *models.FoodUpdateRequest) (*models.Food, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var categoryID interface{}
	if req.CategoryID != "" {
		categoryID = req.CategoryID
	}

	query := `
		UPDATE foods
		SET name = $2, description = $3, price = $4, image_url = $5, category_id = $6, updated_at = $7
		WHERE id = $1`

	result, err := r.db.Exec(query,
		id,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.Price,
		req.ImageURL,
		categoryID,
		time.Now(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return nil, fmt.Errorf("food with name %q already exists: %w", req.Name, models.ErrDuplicateEntry)
			case "23503":
				return nil, fmt.Errorf("category %s: %w", req.CategoryID, models.ErrCategoryNotFound)
			}
		}
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("food %s: %w", id, models.ErrFoodNotFound)
	}

	return r.GetByID(id)
}

// Delete removes a food item. Foods referenced by order lines cannot be
// deleted because order history must keep resolving them.
func (r *FoodRepository) Delete(id string) error {
	var referenced int
	err := r.db.QueryRow("SELECT COUNT(*) FROM order_items WHERE food_id = $1", id).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("failed to check food references: %w", err)
	}
	if referenced > 0 {
		return fmt.Errorf("food %s: %w", id, models.ErrFoodInUse)
	}

	result, err := r.db.Exec("DELETE FROM foods WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food %s: %w", id, models.ErrFoodNotFound)
	}

	return nil
}

// CountByCategory returns the number of foods assigned to a category
func (r *FoodRepository) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM foods WHERE category_id = $1", categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count foods in category: %w", err)
	}
	return count, nil
}
