package handlers

import (
	"net/http"

	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the unauthenticated menu endpoints
type PublicHandler struct {
	foodService     *services.FoodService
	categoryService *services.CategoryService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(foodService *services.FoodService, categoryService *services.CategoryService) *PublicHandler {
	return &PublicHandler{
		foodService:     foodService,
		categoryService: categoryService,
	}
}

// ListFoods handles GET /api/foods
func (h *PublicHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodService.GetMenu()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, foods)
}

// GetFood handles GET /api/foods/{foodID}
func (h *PublicHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.foodService.GetFood(chi.URLParam(r, "foodID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// GetCategory handles GET /api/categories/{categoryID}
func (h *PublicHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetCategory(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}
