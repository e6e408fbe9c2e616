package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepo keeps orders in memory and resolves prices from a menu
type stubOrderRepo struct {
	menu   map[string]*models.Food
	orders map[string]*models.Order
}

func newStubOrderRepo(foods ...*models.Food) *stubOrderRepo {
	repo := &stubOrderRepo{
		menu:   make(map[string]*models.Food),
		orders: make(map[string]*models.Order),
	}
	for _, food := range foods {
		repo.menu[food.ID] = food
	}
	return repo
}

func (r *stubOrderRepo) Create(req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Status:    models.OrderPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, line := range req.Items {
		food, ok := r.menu[line.FoodID]
		if !ok {
			return nil, fmt.Errorf("food %s: %w", line.FoodID, models.ErrFoodNotFound)
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			FoodID:    food.ID,
			FoodName:  food.Name,
			UnitPrice: food.Price,
			Quantity:  line.Quantity,
		})
		order.TotalPrice += food.Price * line.Quantity
	}

	r.orders[order.ID] = order
	return order, nil
}

func (r *stubOrderRepo) GetByID(id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
	}
	return order, nil
}

func (r *stubOrderRepo) GetByUser(userID string) ([]*models.Order, error) {
	var orders []*models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *stubOrderRepo) GetAll() ([]*repositories.OrderWithCustomer, error) {
	var orders []*repositories.OrderWithCustomer
	for _, order := range r.orders {
		orders = append(orders, &repositories.OrderWithCustomer{Order: order})
	}
	return orders, nil
}

func (r *stubOrderRepo) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrOrderNotFound)
	}
	order.Status = status
	return order, nil
}

func withUser(user *models.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(middleware.SetUserContext(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func orderTestRouter(repo *stubOrderRepo, user *models.User) chi.Router {
	store := sessions.NewCookieStore([]byte("test-session-secret"))
	orderService := services.NewOrderService(repo)
	handler := NewOrderHandler(orderService, store)
	adminHandler := NewAdminOrderHandler(orderService)

	router := chi.NewRouter()
	router.Use(withUser(user))
	router.Post("/api/orders", handler.PlaceOrder)
	router.Get("/api/orders", handler.ListOrders)
	router.Get("/api/orders/{orderID}", handler.GetOrder)
	router.Get("/api/admin/orders", adminHandler.ListOrders)
	router.Put("/api/admin/orders/{orderID}/status", adminHandler.UpdateStatus)
	return router
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

var (
	testCustomer = &models.User{ID: "user-1", Role: models.RoleCustomer}
	testAdmin    = &models.User{ID: "admin-1", Role: models.RoleAdmin}
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	repo := newStubOrderRepo(nyamaChoma, ugali)
	router := orderTestRouter(repo, testCustomer)

	body := jsonBody(t, placeOrderRequest{Items: []models.OrderLineRequest{
		{FoodID: "food-1", Quantity: 2},
		{FoodID: "food-2", Quantity: 1},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, models.OrderPending, order.Status)
	// Prices come from the menu, not the request.
	assert.Equal(t, 2*1200+300, order.TotalPrice)
	assert.Len(t, order.Items, 2)
}

func TestOrderHandler_PlaceOrder_EmptyRejected(t *testing.T) {
	repo := newStubOrderRepo()
	router := orderTestRouter(repo, testCustomer)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", jsonBody(t, placeOrderRequest{}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_PlaceOrder_UnknownFoodAbortsAll(t *testing.T) {
	repo := newStubOrderRepo(nyamaChoma)
	router := orderTestRouter(repo, testCustomer)

	body := jsonBody(t, placeOrderRequest{Items: []models.OrderLineRequest{
		{FoodID: "food-1", Quantity: 1},
		{FoodID: "ghost", Quantity: 1},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, repo.orders)
}

func TestOrderHandler_GetOrder_Ownership(t *testing.T) {
	repo := newStubOrderRepo(nyamaChoma)
	order, err := repo.Create(&models.OrderCreateRequest{
		UserID: "someone-else",
		Items:  []models.OrderLineRequest{{FoodID: "food-1", Quantity: 1}},
	})
	require.NoError(t, err)

	router := orderTestRouter(repo, testCustomer)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrderHandler_UpdateStatus(t *testing.T) {
	repo := newStubOrderRepo(nyamaChoma)
	order, err := repo.Create(&models.OrderCreateRequest{
		UserID: "user-1",
		Items:  []models.OrderLineRequest{{FoodID: "food-1", Quantity: 1}},
	})
	require.NoError(t, err)

	t.Run("admin updates status", func(t *testing.T) {
		router := orderTestRouter(repo, testAdmin)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+order.ID+"/status",
			jsonBody(t, statusUpdateRequest{Status: models.OrderOutForDelivery}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Equal(t, models.OrderOutForDelivery, updated.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		router := orderTestRouter(repo, testAdmin)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+order.ID+"/status",
			jsonBody(t, map[string]string{"status": "Lost"}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		router := orderTestRouter(repo, testCustomer)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+order.ID+"/status",
			jsonBody(t, statusUpdateRequest{Status: models.OrderConfirmed}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing order", func(t *testing.T) {
		router := orderTestRouter(repo, testAdmin)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/missing/status",
			jsonBody(t, statusUpdateRequest{Status: models.OrderConfirmed}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
