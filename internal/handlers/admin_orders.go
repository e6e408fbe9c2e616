package handlers

import (
	"net/http"

	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminOrderHandler handles the order back office
type AdminOrderHandler struct {
	orderService *services.OrderService
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(orderService *services.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{orderService: orderService}
}

// ListOrders handles GET /api/admin/orders
func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserFromContext(r.Context())

	orders, err := h.orderService.ListAllOrders(actor)
	if err != nil {
		respondError(w, err)
		return
	}

	if orders == nil {
		orders = []*repositories.OrderWithCustomer{}
	}
	respondJSON(w, http.StatusOK, orders)
}

type statusUpdateRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus handles PUT /api/admin/orders/{orderID}/status
func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserFromContext(r.Context())

	var req statusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(actor, chi.URLParam(r, "orderID"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
