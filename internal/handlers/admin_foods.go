package handlers

import (
	"net/http"

	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminFoodHandler handles menu management endpoints
type AdminFoodHandler struct {
	foodService *services.FoodService
}

// NewAdminFoodHandler creates a new admin food handler
func NewAdminFoodHandler(foodService *services.FoodService) *AdminFoodHandler {
	return &AdminFoodHandler{foodService: foodService}
}

// ListFoods handles GET /api/admin/foods
func (h *AdminFoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foodService.GetMenu()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, foods)
}

// CreateFood handles POST /api/admin/foods
func (h *AdminFoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	food, err := h.foodService.CreateFood(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, food)
}

// UpdateFood handles PUT /api/admin/foods/{foodID}
func (h *AdminFoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	food, err := h.foodService.UpdateFood(chi.URLParam(r, "foodID"), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// DeleteFood handles DELETE /api/admin/foods/{foodID}
func (h *AdminFoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	if err := h.foodService.DeleteFood(chi.URLParam(r, "foodID")); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
