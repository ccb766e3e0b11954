package stubserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/config"
	"healthshop-client/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(logSink{}, "", 0)
	srv := New(config.Stub{HTTPAddr: ":0"}, logger)
	srv.Seed()
	return srv
}

type logSink struct{}

func (logSink) Write(p []byte) (int, error) { return len(p), nil }

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body.String(), err)
	}
	return out
}

func loginAs(t *testing.T, srv *Server, email, password string) string {
	t.Helper()
	rec := doJSON(t, srv, "POST", "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if rec.Code != 200 {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, rec.Code, rec.Body.String())
	}
	res := decode[domain.AuthResponse](t, rec)
	if res.Token == "" {
		t.Fatal("expected token in login response")
	}
	return res.Token
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %s: %v", rec.Body.String(), err)
	}
	return body.Message
}

func firstProductID(t *testing.T, srv *Server, token string) int64 {
	t.Helper()
	rec := doJSON(t, srv, "GET", "/api/products?size=1", token, nil)
	if rec.Code != 200 {
		t.Fatalf("list products: %d", rec.Code)
	}
	page := decode[domain.Page[domain.Product]](t, rec)
	if len(page.Content) == 0 {
		t.Fatal("expected seeded products")
	}
	return page.Content[0].ID
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	payload := map[string]string{
		"email": "new@example.com", "password": "secret12", "firstName": "New",
	}
	rec := doJSON(t, srv, "POST", "/api/auth/register", "", payload)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	res := decode[domain.AuthResponse](t, rec)
	if res.Token == "" || res.Role != domain.RoleUser {
		t.Fatalf("unexpected auth response: %+v", res)
	}

	rec = doJSON(t, srv, "POST", "/api/auth/register", "", payload)
	if rec.Code != 400 || errorMessage(t, rec) != "Email already registered" {
		t.Fatalf("expected duplicate rejection, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, "POST", "/api/auth/login", "", map[string]string{
		"email": "demo@healthshop.dev", "password": "wrong",
	})
	if rec.Code != 401 || errorMessage(t, rec) != "Invalid email or password" {
		t.Fatalf("expected 401 bad credentials, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/api/cart", "/api/wishlist", "/api/orders/history"} {
		rec := doJSON(t, srv, "GET", path, "", nil)
		if rec.Code != 401 {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestMeReturnsProfile(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	rec := doJSON(t, srv, "GET", "/api/auth/me", token, nil)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	user := decode[domain.User](t, rec)
	if user.Email != "demo@healthshop.dev" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCartLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	productID := firstProductID(t, srv, token)

	// add twice; the second add merges into the same line
	rec := doJSON(t, srv, "POST", "/api/cart", token, map[string]interface{}{
		"productId": productID, "quantity": 2,
	})
	if rec.Code != 200 {
		t.Fatalf("add: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, srv, "POST", "/api/cart", token, map[string]interface{}{
		"productId": productID, "quantity": 1,
	})
	if rec.Code != 200 {
		t.Fatalf("second add: %d", rec.Code)
	}

	rec = doJSON(t, srv, "GET", "/api/cart", token, nil)
	items := decode[[]domain.CartItem](t, rec)
	if len(items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	wantTotal := items[0].EffectiveUnitPrice() * 3
	if diff := items[0].TotalPrice - wantTotal; diff > 0.01 || diff < -0.01 {
		t.Fatalf("expected line total %v, got %v", wantTotal, items[0].TotalPrice)
	}
	itemID := items[0].ID

	// absolute quantity update
	rec = doJSON(t, srv, "PUT", fmt.Sprintf("/api/cart/%d?quantity=5", itemID), token, nil)
	if rec.Code != 200 {
		t.Fatalf("update: %d", rec.Code)
	}
	updated := decode[domain.CartItem](t, rec)
	if updated.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated.Quantity)
	}

	// zero quantity deletes the line
	rec = doJSON(t, srv, "PUT", fmt.Sprintf("/api/cart/%d?quantity=0", itemID), token, nil)
	if rec.Code != 204 {
		t.Fatalf("zero quantity: expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, srv, "GET", "/api/cart", token, nil)
	if items := decode[[]domain.CartItem](t, rec); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestCartIsolationBetweenUsers(t *testing.T) {
	srv := newTestServer(t)
	demo := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	admin := loginAs(t, srv, "admin@healthshop.dev", "admin123")
	productID := firstProductID(t, srv, demo)

	rec := doJSON(t, srv, "POST", "/api/cart", demo, map[string]interface{}{"productId": productID, "quantity": 1})
	if rec.Code != 200 {
		t.Fatalf("add: %d", rec.Code)
	}
	items := decode[[]domain.CartItem](t, doJSON(t, srv, "GET", "/api/cart", demo, nil))
	itemID := items[0].ID

	// another user cannot touch the line
	rec = doJSON(t, srv, "DELETE", fmt.Sprintf("/api/cart/%d", itemID), admin, nil)
	if rec.Code != 404 {
		t.Fatalf("expected 404 for foreign cart line, got %d", rec.Code)
	}
}

func TestCouponValidationMessages(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")

	cases := []struct {
		code    string
		amount  float64
		message string
	}{
		{"NOPE", 100, "Invalid coupon code"},
		{"PAUSED15", 100, "Coupon is inactive"},
		{"EXPIRED20", 100, "Coupon has expired"},
		{"SAVE5", 10, "Minimum purchase amount not met for this coupon"},
	}
	for _, c := range cases {
		rec := doJSON(t, srv, "POST", "/api/coupons/validate", token, map[string]interface{}{
			"code": c.code, "amount": c.amount,
		})
		if rec.Code != 400 || errorMessage(t, rec) != c.message {
			t.Fatalf("%s: expected %q, got %d %s", c.code, c.message, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, srv, "POST", "/api/coupons/validate", token, map[string]interface{}{
		"code": "welcome10", "amount": 40,
	})
	if rec.Code != 200 {
		t.Fatalf("expected valid coupon, got %d %s", rec.Code, rec.Body.String())
	}
	coupon := decode[domain.Coupon](t, rec)
	if coupon.Code != "WELCOME10" || coupon.DiscountType != domain.DiscountPercentage {
		t.Fatalf("unexpected coupon: %+v", coupon)
	}
}

func TestCreateOrderFromCart(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")

	// empty cart is rejected
	shipping := map[string]interface{}{
		"shippingName": "Pat", "shippingAddress": "1 Main St",
		"shippingCity": "Springfield", "shippingState": "IL", "shippingZip": "62704",
	}
	rec := doJSON(t, srv, "POST", "/api/orders", token, shipping)
	if rec.Code != 400 || errorMessage(t, rec) != "Cart is empty" {
		t.Fatalf("expected empty cart rejection, got %d %s", rec.Code, rec.Body.String())
	}

	productID := firstProductID(t, srv, token)
	rec = doJSON(t, srv, "POST", "/api/cart", token, map[string]interface{}{"productId": productID, "quantity": 2})
	if rec.Code != 200 {
		t.Fatalf("add: %d", rec.Code)
	}

	shipping["couponCode"] = "WELCOME10"
	rec = doJSON(t, srv, "POST", "/api/orders", token, shipping)
	if rec.Code != 200 {
		t.Fatalf("create order: %d %s", rec.Code, rec.Body.String())
	}
	order := decode[domain.Order](t, rec)
	if !strings.HasPrefix(order.OrderNumber, "HS-") {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if order.Status != domain.OrderPending || order.PaymentStatus != "PENDING" {
		t.Fatalf("unexpected statuses: %s/%s", order.Status, order.PaymentStatus)
	}
	wantDiscount := order.TotalAmount * 0.10
	if diff := order.DiscountAmount - wantDiscount; diff > 0.01 || diff < -0.01 {
		t.Fatalf("expected 10%% discount of %v, got %v", order.TotalAmount, order.DiscountAmount)
	}
	if diff := order.FinalAmount - (order.TotalAmount - order.DiscountAmount); diff > 0.01 || diff < -0.01 {
		t.Fatalf("final amount mismatch: %+v", order)
	}

	// ordering clears the cart
	rec = doJSON(t, srv, "GET", "/api/cart", token, nil)
	if items := decode[[]domain.CartItem](t, rec); len(items) != 0 {
		t.Fatalf("expected cart cleared after order, got %d lines", len(items))
	}

	// and shows up in history
	rec = doJSON(t, srv, "GET", "/api/orders/history", token, nil)
	history := decode[domain.Page[domain.Order]](t, rec)
	if history.TotalElements != 1 || history.Content[0].OrderNumber != order.OrderNumber {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestOrderRejectsFailingCoupon(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	productID := firstProductID(t, srv, token)
	doJSON(t, srv, "POST", "/api/cart", token, map[string]interface{}{"productId": productID, "quantity": 1})

	rec := doJSON(t, srv, "POST", "/api/orders", token, map[string]interface{}{
		"shippingName": "Pat", "shippingAddress": "1 Main St",
		"shippingCity": "Springfield", "shippingState": "IL", "shippingZip": "62704",
		"couponCode": "EXPIRED20",
	})
	if rec.Code != 400 || errorMessage(t, rec) != "Coupon has expired" {
		t.Fatalf("expected coupon rejection, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestWishlistEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	productID := firstProductID(t, srv, token)

	rec := doJSON(t, srv, "GET", fmt.Sprintf("/api/wishlist/check/%d", productID), token, nil)
	if decode[bool](t, rec) {
		t.Fatal("expected not in wishlist yet")
	}

	if rec := doJSON(t, srv, "POST", fmt.Sprintf("/api/wishlist/%d", productID), token, nil); rec.Code != 200 {
		t.Fatalf("add: %d", rec.Code)
	}
	rec = doJSON(t, srv, "GET", fmt.Sprintf("/api/wishlist/check/%d", productID), token, nil)
	if !decode[bool](t, rec) {
		t.Fatal("expected in wishlist")
	}
	rec = doJSON(t, srv, "GET", "/api/wishlist", token, nil)
	if products := decode[[]domain.Product](t, rec); len(products) != 1 || products[0].ID != productID {
		t.Fatalf("unexpected wishlist: %+v", products)
	}

	if rec := doJSON(t, srv, "DELETE", fmt.Sprintf("/api/wishlist/%d", productID), token, nil); rec.Code != 200 {
		t.Fatalf("remove: %d", rec.Code)
	}
	rec = doJSON(t, srv, "GET", fmt.Sprintf("/api/wishlist/check/%d", productID), token, nil)
	if decode[bool](t, rec) {
		t.Fatal("expected removed from wishlist")
	}
}

func TestHealthProfileDerivesAgeGroup(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")

	if rec := doJSON(t, srv, "GET", "/api/user/health-profile", token, nil); rec.Code != 404 {
		t.Fatalf("expected 404 before profile set, got %d", rec.Code)
	}

	rec := doJSON(t, srv, "PUT", "/api/user/health-profile", token, map[string]interface{}{
		"age": 34, "height": 180, "weight": 72, "healthGoals": []string{"sleep"},
	})
	if rec.Code != 200 {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	profile := decode[domain.HealthProfile](t, rec)
	if profile.AgeGroup != domain.AgeGroupAdult {
		t.Fatalf("expected ADULT age group, got %q", profile.AgeGroup)
	}

	rec = doJSON(t, srv, "GET", "/api/user/health-profile", token, nil)
	if rec.Code != 200 {
		t.Fatalf("get: %d", rec.Code)
	}
}

func TestProductFiltersAndPaging(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, "GET", "/api/products?search=vitamin&size=2", "", nil)
	if rec.Code != 200 {
		t.Fatalf("search: %d", rec.Code)
	}
	page := decode[domain.Page[domain.Product]](t, rec)
	if len(page.Content) != 2 || page.Size != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	for _, p := range page.Content {
		if !strings.Contains(strings.ToLower(p.Name), "vitamin") {
			t.Fatalf("search leak: %s", p.Name)
		}
	}

	rec = doJSON(t, srv, "GET", "/api/products?sortBy=price&sortDir=asc&size=50", "", nil)
	sorted := decode[domain.Page[domain.Product]](t, rec)
	for i := 1; i < len(sorted.Content); i++ {
		if sorted.Content[i-1].EffectivePrice() > sorted.Content[i].EffectivePrice() {
			t.Fatalf("not sorted by price at %d", i)
		}
	}

	rec = doJSON(t, srv, "GET", "/api/products/health-goal/immunity", "", nil)
	goalProducts := decode[[]domain.Product](t, rec)
	if len(goalProducts) == 0 {
		t.Fatal("expected immunity products")
	}
	for _, p := range goalProducts {
		if !p.HealthGoals.Contains("immunity") {
			t.Fatalf("goal filter leak: %s", p.Name)
		}
	}

	rec = doJSON(t, srv, "GET", "/api/products/featured", "", nil)
	featured := decode[[]domain.Product](t, rec)
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("featured filter leak: %s", p.Name)
		}
	}
}

func TestAdminRoutesRequireRole(t *testing.T) {
	srv := newTestServer(t)
	demo := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	admin := loginAs(t, srv, "admin@healthshop.dev", "admin123")

	if rec := doJSON(t, srv, "GET", "/api/admin/stats", demo, nil); rec.Code != 403 {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
	rec := doJSON(t, srv, "GET", "/api/admin/stats", admin, nil)
	if rec.Code != 200 {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestAdminProductAndCouponCRUD(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAs(t, srv, "admin@healthshop.dev", "admin123")

	rec := doJSON(t, srv, "POST", "/api/admin/products", admin, map[string]interface{}{
		"name": "Collagen Peptides", "price": 24.99, "stock": 40,
	})
	if rec.Code != 200 {
		t.Fatalf("create product: %d %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.Product](t, rec)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	rec = doJSON(t, srv, "PUT", fmt.Sprintf("/api/admin/products/%d", created.ID), admin, map[string]interface{}{
		"name": "Collagen Peptides", "price": 19.99, "stock": 40,
	})
	if rec.Code != 200 || decode[domain.Product](t, rec).Price != 19.99 {
		t.Fatalf("update product: %d %s", rec.Code, rec.Body.String())
	}

	if rec := doJSON(t, srv, "DELETE", fmt.Sprintf("/api/admin/products/%d", created.ID), admin, nil); rec.Code != 204 {
		t.Fatalf("delete product: %d", rec.Code)
	}

	rec = doJSON(t, srv, "POST", "/api/admin/coupons", admin, map[string]interface{}{
		"code": "spring25", "discountType": "PERCENTAGE", "discountValue": 25, "isActive": true,
	})
	if rec.Code != 200 || decode[domain.Coupon](t, rec).Code != "SPRING25" {
		t.Fatalf("create coupon: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, srv, "POST", "/api/admin/coupons", admin, map[string]interface{}{
		"code": "SPRING25", "discountType": "PERCENTAGE", "discountValue": 25, "isActive": true,
	})
	if rec.Code != 400 || errorMessage(t, rec) != "Coupon code already exists" {
		t.Fatalf("expected duplicate coupon rejection, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestAdminOrderStatusTransition(t *testing.T) {
	srv := newTestServer(t)
	demo := loginAs(t, srv, "demo@healthshop.dev", "demo1234")
	admin := loginAs(t, srv, "admin@healthshop.dev", "admin123")
	productID := firstProductID(t, srv, demo)

	doJSON(t, srv, "POST", "/api/cart", demo, map[string]interface{}{"productId": productID, "quantity": 1})
	rec := doJSON(t, srv, "POST", "/api/orders", demo, map[string]interface{}{
		"shippingName": "Pat", "shippingAddress": "1 Main St",
		"shippingCity": "Springfield", "shippingState": "IL", "shippingZip": "62704",
	})
	order := decode[domain.Order](t, rec)

	rec = doJSON(t, srv, "PUT", fmt.Sprintf("/api/admin/orders/%d/status?status=SHIPPED", order.ID), admin, nil)
	if rec.Code != 200 || decode[domain.Order](t, rec).Status != domain.OrderShipped {
		t.Fatalf("status update: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, "PUT", fmt.Sprintf("/api/admin/orders/%d/status?status=BOGUS", order.ID), admin, nil)
	if rec.Code != 400 {
		t.Fatalf("expected invalid status rejection, got %d", rec.Code)
	}
}

func TestAIEndpointsRespond(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "demo@healthshop.dev", "demo1234")

	doJSON(t, srv, "PUT", "/api/user/health-profile", token, map[string]interface{}{
		"age": 34, "height": 180, "weight": 72, "healthGoals": []string{"immunity"},
	})

	rec := doJSON(t, srv, "GET", "/api/ai/health-score", token, nil)
	if rec.Code != 200 {
		t.Fatalf("health score: %d", rec.Code)
	}
	score := decode[domain.HealthScore](t, rec)
	if score.OverallScore <= 0 || score.Grade == "" {
		t.Fatalf("unexpected score: %+v", score)
	}

	rec = doJSON(t, srv, "POST", "/api/ai/chat", token, map[string]interface{}{"message": "I need something for immunity"})
	if rec.Code != 200 {
		t.Fatalf("chat: %d", rec.Code)
	}
	reply := decode[domain.ChatReply](t, rec)
	if len(reply.SuggestedProducts) == 0 {
		t.Fatalf("expected product suggestions, got %+v", reply)
	}

	rec = doJSON(t, srv, "GET", "/api/ai/daily-tips", token, nil)
	if rec.Code != 200 || len(decode[[]domain.HealthTip](t, rec)) == 0 {
		t.Fatalf("daily tips: %d", rec.Code)
	}

	rec = doJSON(t, srv, "GET", "/api/ai/nutrition-gaps", token, nil)
	if rec.Code != 200 || len(decode[domain.NutritionGapAnalysis](t, rec).Gaps) == 0 {
		t.Fatalf("nutrition gaps: %d", rec.Code)
	}
}
