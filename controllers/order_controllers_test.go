package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func signTestToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(userID),
		"role":    role,
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// newTestRouter wires the customer order routes against a fake commerce
// backend and returns the router plus the backend server for cleanup.
func newTestRouter(t *testing.T, backendHandler http.HandlerFunc) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", testJWTSecret)

	server := httptest.NewServer(backendHandler)
	client, err := config.NewBackendClient(server.URL, server.Client())
	require.NoError(t, err)
	config.Backend = client

	router := gin.New()
	orders := router.Group("/v1/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", ListOrders)
		orders.GET("/:id", GetOrder)
		orders.GET("/:id/refund", GetRefundPreview)
	}
	return router, server
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListOrdersRequiresAuth(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend should not be called without auth")
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOrdersGroupsAndCounts(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/my-orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "code": "GC-001", "status": "CREATED", "totalAmount": 100000},
			{"id": 2, "code": "GC-002", "status": "DELIVERED", "totalAmount": 200000},
			{"id": 3, "code": "GC-003", "status": "RETURN_REQUESTED", "totalAmount": 300000}
		]`))
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})

	counts := data["group_counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["pending"])
	assert.Equal(t, float64(1), counts["delivered"])
	assert.Equal(t, float64(1), counts["returned"])

	orders := data["orders"].([]interface{})
	assert.Len(t, orders, 3)
}

func TestListOrdersGroupFilter(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "status": "CREATED"},
			{"id": 2, "status": "RETURN_REQUESTED"},
			{"id": 3, "status": "REFUNDED"}
		]`))
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders?group=returned", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	orders := data["orders"].([]interface{})
	require.Len(t, orders, 2)
	for _, raw := range orders {
		order := raw.(map[string]interface{})
		assert.Equal(t, "returned", order["status_group"])
	}
}

func TestListOrdersRejectsUnknownGroup(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders?group=bogus", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFoundPassesThrough(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "order not found"}`))
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/99", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRefundPreviewCustomerReturn(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/12", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 12,
			"code": "GC-012",
			"status": "RETURN_REQUESTED",
			"totalAmount": 500000,
			"shippingFee": 50000,
			"refundSecondShippingFee": 30000,
			"refundReasonType": "customer",
			"refundDescription": "Không hợp với da",
			"items": [{"id": 1, "quantity": 3, "unitPrice": 150000, "totalPrice": 450000}]
		}`))
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/12/refund", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	refund := data["refund"].(map[string]interface{})
	summary := refund["summary"].(map[string]interface{})

	assert.Equal(t, float64(450000), summary["productValue"])
	assert.Equal(t, float64(45000), summary["returnPenalty"])
	assert.Equal(t, float64(425000), summary["total"])
}

func TestGetRefundPreviewInvalidID(t *testing.T) {
	router, server := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend should not be called for an invalid order ID")
	})
	defer server.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/abc/refund", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 5, "customer"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
