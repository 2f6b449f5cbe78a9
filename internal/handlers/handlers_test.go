package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/chat"
	"github.com/atelier-moda/storefront/internal/checkout"
	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/persist"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	store := persist.NewMemory()

	catalogSvc := catalog.NewService(catalog.NewInMemoryRepository(catalog.SeedProducts()))
	history := orders.NewHistory(store, "order-storage", log)
	sessions := NewSessionManager(store, history,
		checkout.Pricing{
			FreeShippingThreshold: decimal.NewFromInt(2000),
			FlatShippingFee:       decimal.NewFromInt(50),
		},
		CouponConfig{Code: "İLK10", Percent: 10},
		log,
	)

	r := gin.New()
	RegisterCatalogRoutes(r, catalogSvc, log)
	RegisterChatRoutes(r, chat.NewService())
	RegisterStorefrontRoutes(r, sessions, catalogSvc, history, log)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, session string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestProductListing(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])
	require.Equal(t, float64(8), resp["count"])
}

func TestProductLookupMiss(t *testing.T) {
	r := newTestRouter(t)

	w, resp := do(t, r, http.MethodGet, "/api/products/999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, resp["success"])
	require.Contains(t, resp["error"], "bulunamadı")
}

func TestSearchRequiresQuery(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/products/search", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := do(t, r, http.MethodGet, "/api/products/search?q=Oxford", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), resp["count"])
}

func TestChatRecommend(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodPost, "/api/chat/recommend", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := do(t, r, http.MethodPost, "/api/chat/recommend", "", map[string]string{"message": "Ne önerirsiniz?"})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	require.NotEmpty(t, data["message"])
	require.Len(t, data["recommendations"], 3)
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":    "Ayşe",
		"lastName":     "Yılmaz",
		"email":        "ayse@example.com",
		"phoneCountry": "+90",
		"phone":        "532 123 45 67",
		"address":      "Moda Cad. No:1, Kadıköy, İstanbul",
		"cardName":     "AYŞE YILMAZ",
		"cardNumber":   "1234 5678 9012 3456",
		"expiryDate":   "12/99",
		"cvv":          "123",
	}
}

func TestCartCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)
	const sid = "session-1"

	// add two of product 3 (3290 each)
	w, _ := do(t, r, http.MethodPost, "/api/cart/items", sid, map[string]interface{}{
		"productId": "3", "quantity": 2, "size": "M", "color": "Beyaz",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// unknown product is a 404
	w, _ = do(t, r, http.MethodPost, "/api/cart/items", sid, map[string]interface{}{
		"productId": "999", "quantity": 1, "size": "M", "color": "Beyaz",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// apply the first-order code, lowercase
	w, resp := do(t, r, http.MethodPost, "/api/coupon", sid, map[string]string{"code": "ilk10"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])

	// quote: 6580 - 658 = 5922 ≥ 2000, free shipping
	w, resp = do(t, r, http.MethodGet, "/api/checkout/quote", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	quote := resp["data"].(map[string]interface{})
	require.Equal(t, "6580", quote["subtotal"])
	require.Equal(t, "658", quote["discountAmount"])
	require.Equal(t, "0", quote["shippingCost"])
	require.Equal(t, "5922", quote["total"])

	// submit
	w, resp = do(t, r, http.MethodPost, "/api/checkout", sid, checkoutBody())
	require.Equal(t, http.StatusCreated, w.Code)
	order := resp["data"].(map[string]interface{})
	require.Equal(t, "guest:"+sid, order["userId"])
	require.Equal(t, "pending", order["status"])

	// post-conditions: order listed, cart empty, coupon reset
	w, resp = do(t, r, http.MethodGet, "/api/orders", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), resp["count"])

	_, resp = do(t, r, http.MethodGet, "/api/cart", sid, nil)
	cartData := resp["data"].(map[string]interface{})
	require.Equal(t, float64(0), cartData["totalItems"])

	_, resp = do(t, r, http.MethodGet, "/api/coupon", sid, nil)
	couponData := resp["data"].(map[string]interface{})
	require.Equal(t, false, couponData["isApplied"])

	// second apply attempt is rejected: the guest now has a prior order
	w, resp = do(t, r, http.MethodPost, "/api/coupon", sid, map[string]string{"code": "İLK10"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["error"], "ilk siparişinizde")
}

func TestCheckoutValidationBlocksSubmission(t *testing.T) {
	r := newTestRouter(t)
	const sid = "session-2"

	_, _ = do(t, r, http.MethodPost, "/api/cart/items", sid, map[string]interface{}{
		"productId": "3", "quantity": 1, "size": "M", "color": "Beyaz",
	})

	body := checkoutBody()
	body["cvv"] = "12"
	w, resp := do(t, r, http.MethodPost, "/api/checkout", sid, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "CVV 3 haneli olmalıdır", resp["error"])

	// nothing changed
	_, resp = do(t, r, http.MethodGet, "/api/orders", sid, nil)
	require.Equal(t, float64(0), resp["count"])
	_, resp = do(t, r, http.MethodGet, "/api/cart", sid, nil)
	require.Equal(t, float64(1), resp["data"].(map[string]interface{})["totalItems"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodPost, "/api/checkout", "session-3", checkoutBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	r := newTestRouter(t)

	_, _ = do(t, r, http.MethodPost, "/api/cart/items", "session-a", map[string]interface{}{
		"productId": "3", "quantity": 1, "size": "M", "color": "Beyaz",
	})

	_, resp := do(t, r, http.MethodGet, "/api/cart", "session-b", nil)
	require.Equal(t, float64(0), resp["data"].(map[string]interface{})["totalItems"])
}

func TestGuestOrdersAreSessionScoped(t *testing.T) {
	r := newTestRouter(t)

	_, _ = do(t, r, http.MethodPost, "/api/cart/items", "session-g1", map[string]interface{}{
		"productId": "3", "quantity": 1, "size": "M", "color": "Beyaz",
	})
	w, _ := do(t, r, http.MethodPost, "/api/checkout", "session-g1", checkoutBody())
	require.Equal(t, http.StatusCreated, w.Code)

	// a fresh guest session sees none of the first session's orders
	w, resp := do(t, r, http.MethodGet, "/api/orders", "session-g2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(0), resp["count"])
	require.Empty(t, resp["data"])

	// and its first-order discount is still available
	w, _ = do(t, r, http.MethodPost, "/api/coupon", "session-g2", map[string]string{"code": "İLK10"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCartVariantRemoval(t *testing.T) {
	r := newTestRouter(t)
	const sid = "session-4"

	_, _ = do(t, r, http.MethodPost, "/api/cart/items", sid, map[string]interface{}{
		"productId": "3", "quantity": 1, "size": "M", "color": "Beyaz",
	})
	_, _ = do(t, r, http.MethodPost, "/api/cart/items", sid, map[string]interface{}{
		"productId": "3", "quantity": 2, "size": "L", "color": "Beyaz",
	})

	w, _ := do(t, r, http.MethodDelete, "/api/cart/items", sid, map[string]interface{}{
		"productId": "3", "size": "M", "color": "Beyaz",
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, resp := do(t, r, http.MethodGet, "/api/cart", sid, nil)
	require.Equal(t, float64(2), resp["data"].(map[string]interface{})["totalItems"])
}

func TestProfileAddresses(t *testing.T) {
	r := newTestRouter(t)
	const sid = "session-5"

	w, _ := do(t, r, http.MethodPost, "/api/profile/login", sid, map[string]interface{}{
		"id": "u1", "name": "Ayşe Yılmaz", "email": "ayse@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := do(t, r, http.MethodPost, "/api/profile/addresses", sid, map[string]interface{}{
		"title": "Ev", "city": "İstanbul",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	addr := resp["data"].(map[string]interface{})
	require.Equal(t, true, addr["isDefault"])

	_, resp = do(t, r, http.MethodGet, "/api/profile", sid, nil)
	user := resp["data"].(map[string]interface{})
	require.Equal(t, true, user["isAuthenticated"])
	require.Len(t, user["addresses"], 1)
}
