package handlers

import (
	"net/http"

	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// OrderHandler handles customer-facing order endpoints
type OrderHandler struct {
	orderService *services.OrderService
	store        sessions.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService, store sessions.Store) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		store:        store,
	}
}

type placeOrderRequest struct {
	Items []models.OrderLineRequest `json:"items"`
}

// PlaceOrder handles POST /api/orders. If the request body carries no
// items the session cart is used instead. The cart is cleared only
// after the order is created.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	// The body is optional; checking out without one orders the cart.
	var req placeOrderRequest
	_ = decodeJSON(r, &req)

	session, _ := h.store.Get(r, middleware.SessionName)

	if len(req.Items) == 0 {
		req.Items = cartLines(session)
	}

	order, err := h.orderService.PlaceOrder(user, req.Items)
	if err != nil {
		respondError(w, err)
		return
	}

	if session != nil {
		delete(session.Values, cartSessionKey)
		session.Save(r, w)
	}

	respondJSON(w, http.StatusCreated, order)
}

// cartLines converts the session cart to order line requests
func cartLines(session *sessions.Session) []models.OrderLineRequest {
	if session == nil {
		return nil
	}

	var cart *models.Cart
	switch v := session.Values[cartSessionKey].(type) {
	case *models.Cart:
		cart = v
	case models.Cart:
		cart = &v
	default:
		return nil
	}

	lines := make([]models.OrderLineRequest, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, models.OrderLineRequest{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
		})
	}
	return lines
}

// ListOrders handles GET /api/orders, the customer's own history
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orders, err := h.orderService.ListUserOrders(user)
	if err != nil {
		respondError(w, err)
		return
	}

	if orders == nil {
		orders = []*models.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	order, err := h.orderService.GetOrder(user, chi.URLParam(r, "orderID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
