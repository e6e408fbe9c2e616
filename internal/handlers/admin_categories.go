package handlers

import (
	"net/http"

	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminCategoryHandler handles category management endpoints
type AdminCategoryHandler struct {
	categoryService *services.CategoryService
}

// NewAdminCategoryHandler creates a new admin category handler
func NewAdminCategoryHandler(categoryService *services.CategoryService) *AdminCategoryHandler {
	return &AdminCategoryHandler{categoryService: categoryService}
}

// ListCategories handles GET /api/admin/categories. Unlike the public
// read path it includes deactivated categories.
func (h *AdminCategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminCategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/admin/categories/{categoryID}
func (h *AdminCategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(chi.URLParam(r, "categoryID"), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{categoryID}.
// Categories still holding foods are refused with a conflict.
func (h *AdminCategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteCategory(chi.URLParam(r, "categoryID")); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
