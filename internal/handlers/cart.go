package handlers

import (
	"encoding/gob"
	"log"
	"net/http"

	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

const cartSessionKey = "cart"

// The cart is stored in the session cookie via gob.
func init() {
	gob.Register(&models.Cart{})
}

// CartHandler manages the session-persisted shopping cart
type CartHandler struct {
	foodService *services.FoodService
	store       sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(foodService *services.FoodService, store sessions.Store) *CartHandler {
	return &CartHandler{
		foodService: foodService,
		store:       store,
	}
}

// cartResponse is the wire shape of the cart
type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice int               `json:"total_price"`
	ItemCount  int               `json:"item_count"`
}

func newCartResponse(cart *models.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalPrice: cart.TotalPrice(),
		ItemCount:  cart.TotalItemCount(),
	}
}

// loadCart reads the cart from the session. A missing or malformed slot
// yields an empty cart rather than an error, so a corrupted cookie never
// locks a customer out.
func (h *CartHandler) loadCart(r *http.Request) (*models.Cart, *sessions.Session) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		session, _ = h.store.New(r, middleware.SessionName)
	}

	if cart, ok := session.Values[cartSessionKey].(*models.Cart); ok && cart != nil {
		return cart, session
	}
	if cart, ok := session.Values[cartSessionKey].(models.Cart); ok {
		return &cart, session
	}

	return &models.Cart{}, session
}

// saveCart writes the cart back to the session. Save failures are
// logged and the mutated cart is still returned to the client; the
// worst case is a cart that reverts on the next request.
func (h *CartHandler) saveCart(w http.ResponseWriter, r *http.Request, session *sessions.Session, cart *models.Cart) {
	session.Values[cartSessionKey] = cart
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save cart session: %v", err)
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, _ := h.loadCart(r)
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

type addItemRequest struct {
	FoodID string `json:"food_id"`
}

// AddItem handles POST /api/cart/items. Adding an item already in the
// cart increments its quantity.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.FoodID == "" {
		respondError(w, models.ErrInvalidInput)
		return
	}

	food, err := h.foodService.GetFood(req.FoodID)
	if err != nil {
		respondError(w, err)
		return
	}

	cart, session := h.loadCart(r)
	cart.AddItem(food)
	h.saveCart(w, r, session, cart)

	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /api/cart/items/{foodID}. Quantity zero or
// less removes the line; updating an absent item is a no-op.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "foodID")

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, session := h.loadCart(r)
	cart.UpdateQuantity(foodID, req.Quantity)
	h.saveCart(w, r, session, cart)

	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

// RemoveItem handles DELETE /api/cart/items/{foodID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "foodID")

	cart, session := h.loadCart(r)
	cart.RemoveItem(foodID)
	h.saveCart(w, r, session, cart)

	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, session := h.loadCart(r)
	cart.Clear()
	h.saveCart(w, r, session, cart)

	respondJSON(w, http.StatusOK, newCartResponse(cart))
}
