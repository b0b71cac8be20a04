package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_pos/internal/apperrors"
	"restaurant_pos/internal/models"
	"restaurant_pos/internal/redis"
	"restaurant_pos/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*redis.SessionData{}}
}

func (s *fakeSessionStore) SetSession(token string, data *redis.SessionData, ttl time.Duration) error {
	s.sessions[token] = data
	return nil
}

func (s *fakeSessionStore) GetSession(token string) (*redis.SessionData, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return session, nil
}

func (s *fakeSessionStore) DeleteSession(token string) error {
	delete(s.sessions, token)
	return nil
}

type fakeUserService struct {
	roles   map[string]string
	creates int
}

func (s *fakeUserService) GetOrCreateProfile(userID, email, name string) (*models.UserProfile, error) {
	role, ok := s.roles[userID]
	if !ok {
		role = string(models.RoleCashier)
		if s.roles == nil {
			s.roles = map[string]string{}
		}
		s.roles[userID] = role
		s.creates++
	}
	return &models.UserProfile{ID: 1, UserID: userID, Email: email, Name: name, Role: role, IsActive: true}, nil
}

type fakeOrderService struct {
	result  *services.CreateOrderResult
	err     error
	cashier string
	input   services.CreateOrderInput
}

func (s *fakeOrderService) CreateOrder(cashierUserID string, input services.CreateOrderInput) (*services.CreateOrderResult, error) {
	s.cashier = cashierUserID
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *fakeOrderService) GetOrderByID(id uint) (*models.Order, error)            { return nil, nil }
func (s *fakeOrderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) { return nil, nil }

type fakeKitchenService struct {
	items   []models.KitchenItem
	updated map[uint]string
	err     error
}

func (s *fakeKitchenService) ListOpenItems() ([]models.KitchenItem, error) {
	return s.items, s.err
}

func (s *fakeKitchenService) UpdateItemStatus(itemID uint, status string) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = map[uint]string{}
	}
	s.updated[itemID] = status
	return nil
}

type fakeDashboardService struct {
	data *models.DashboardData
	err  error
}

func (s *fakeDashboardService) GetDashboard() (*models.DashboardData, error) {
	return s.data, s.err
}

type testEnv struct {
	router    *gin.Engine
	sessions  *fakeSessionStore
	users     *fakeUserService
	orders    *fakeOrderService
	kitchen   *fakeKitchenService
	dashboard *fakeDashboardService
}

// newTestEnv wires the authenticated part of the route tree the way
// cmd/server does.
func newTestEnv() *testEnv {
	env := &testEnv{
		sessions:  newFakeSessionStore(),
		users:     &fakeUserService{roles: map[string]string{}},
		orders:    &fakeOrderService{result: &services.CreateOrderResult{OrderID: 1, OrderNumber: "ORD-1"}},
		kitchen:   &fakeKitchenService{},
		dashboard: &fakeDashboardService{data: &models.DashboardData{}},
	}

	posHandler := &POSHandler{orderService: env.orders}
	kitchenHandler := NewKitchenHandler(env.kitchen)
	dashboardHandler := NewDashboardHandler(env.dashboard)
	authHandler := NewAuthHandler(nil, env.sessions, env.users, time.Hour, false)

	router := gin.New()
	api := router.Group("/api")
	authed := api.Group("")
	authed.Use(AuthRequired(env.sessions))
	{
		authed.GET("/users/me", authHandler.GetMe)
		authed.POST("/orders", posHandler.CreateOrder)

		kitchen := authed.Group("/kitchen")
		kitchen.Use(RequireRole(env.users, string(models.RoleChef), string(models.RoleOwner)))
		{
			kitchen.GET("/orders", kitchenHandler.GetKitchenOrders)
			kitchen.PUT("/orders/:itemId/status", kitchenHandler.UpdateKitchenStatus)
		}

		authed.GET("/dashboard",
			RequireRole(env.users, string(models.RoleOwner)),
			dashboardHandler.GetDashboard)
	}

	env.router = router
	return env
}

func (env *testEnv) login(userID, role string) *http.Cookie {
	token := "token-" + userID
	env.sessions.sessions[token] = &redis.SessionData{UserID: userID, Email: userID + "@example.com", Name: userID}
	if role != "" {
		env.users.roles[userID] = role
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func (env *testEnv) do(method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsMissingSession(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/kitchen/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/api/kitchen/orders", nil, &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestKitchenRoleGate(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/kitchen/orders", nil, env.login("cashier-1", "cashier"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodGet, "/api/kitchen/orders", nil, env.login("chef-1", "chef"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/kitchen/orders", nil, env.login("owner-1", "owner"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardRoleGate(t *testing.T) {
	env := newTestEnv()

	for _, role := range []string{"cashier", "chef"} {
		w := env.do(http.MethodGet, "/api/dashboard", nil, env.login(role+"-1", role))
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s must not see the dashboard", role)
	}

	w := env.do(http.MethodGet, "/api/dashboard", nil, env.login("owner-1", "owner"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := newTestEnv()
	env.orders.result = &services.CreateOrderResult{OrderID: 42, OrderNumber: "ORD-123-AB"}

	body := map[string]interface{}{
		"order_type": "takeaway",
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 2, "unit_price": 15000},
		},
	}
	w := env.do(http.MethodPost, "/api/orders", body, env.login("cashier-1", "cashier"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool   `json:"success"`
		OrderID     uint   `json:"orderId"`
		OrderNumber string `json:"orderNumber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(42), resp.OrderID)
	assert.Equal(t, "ORD-123-AB", resp.OrderNumber)

	assert.Equal(t, "cashier-1", env.orders.cashier)
	require.Len(t, env.orders.input.Items, 1)
	assert.Equal(t, 15000.0, env.orders.input.Items[0].UnitPrice)
}

func TestCreateOrderEndpointValidationError(t *testing.T) {
	env := newTestEnv()
	env.orders.err = apperrors.NewValidation("order_type", "must be dine_in or takeaway")

	body := map[string]interface{}{
		"order_type": "delivery",
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1, "unit_price": 15000},
		},
	}
	w := env.do(http.MethodPost, "/api/orders", body, env.login("cashier-1", "cashier"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order_type")
}

func TestUpdateKitchenStatusEndpoint(t *testing.T) {
	env := newTestEnv()
	cookie := env.login("chef-1", "chef")

	w := env.do(http.MethodPut, "/api/kitchen/orders/10/status", map[string]string{"status": "completed"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", env.kitchen.updated[10])

	w = env.do(http.MethodPut, "/api/kitchen/orders/abc/status", map[string]string{"status": "completed"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/kitchen/orders/10/status", map[string]string{}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKitchenNotFoundMapsTo404(t *testing.T) {
	env := newTestEnv()
	env.kitchen.err = apperrors.NotFound("order item 999")

	w := env.do(http.MethodPut, "/api/kitchen/orders/999/status", map[string]string{"status": "completed"}, env.login("chef-1", "chef"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMeCreatesProfileOnce(t *testing.T) {
	env := newTestEnv()
	cookie := env.login("new-user", "")

	w := env.do(http.MethodGet, "/api/users/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.users.creates)

	var resp struct {
		ID      string             `json:"id"`
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new-user", resp.ID)
	assert.Equal(t, string(models.RoleCashier), resp.Profile.Role)

	// Second call must not create again.
	w = env.do(http.MethodGet, "/api/users/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.users.creates)
}
