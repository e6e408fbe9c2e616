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

// CategoryRepository handles category data operations
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(scanner interface{ Scan(...interface{}) error }) (*models.Category, error) {
	category := &models.Category{}
	err := scanner.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.ImageURL,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(req *models.CategoryCreateRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()

	query := `
		INSERT INTO categories (id, name, description, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6)
		RETURNING id, name, description, image_url, is_active, created_at, updated_at`

	category, err := scanCategory(r.db.QueryRow(query,
		id,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.ImageURL,
		now,
		now,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("category with name %q already exists: %w", req.Name, models.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1`

	category, err := scanCategory(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %s: %w", id, models.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// List retrieves all categories newest-first
func (r *CategoryRepository) List() ([]*models.Category, error) {
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM categories
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Update updates a category
func (r *CategoryRepository) Update(id string, req *models.CategoryUpdateRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := `
		UPDATE categories
		SET name = $2, description = $3, image_url = $4, is_active = $5, updated_at = $6
		WHERE id = $1
		RETURNING id, name, description, image_url, is_active, created_at, updated_at`

	category, err := scanCategory(r.db.QueryRow(query,
		id,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.ImageURL,
		isActive,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %s: %w", id, models.ErrCategoryNotFound)
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("category with name %q already exists: %w", req.Name, models.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Deactivate soft-deletes a category by marking it inactive
func (r *CategoryRepository) Deactivate(id string) error {
	result, err := r.db.Exec(
		"UPDATE categories SET is_active = FALSE, updated_at = $2 WHERE id = $1",
		id, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %s: %w", id, models.ErrCategoryNotFound)
	}

	return nil
}
