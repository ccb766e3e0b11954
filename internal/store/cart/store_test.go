package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"healthshop-client/internal/domain"
)

type stubAPI struct {
	cartResults    [][]domain.CartItem
	cartErr        error
	cartCalls      int
	addErr         error
	lastAddProduct int64
	lastAddQty     int
	updateErr      error
	lastUpdateItem int64
	lastUpdateQty  int
	removeErr      error
	lastRemoveItem int64
	coupon         *domain.Coupon
	couponErr      error
	lastCouponCode string
	lastCouponAmt  float64
}

func (s *stubAPI) Cart(_ context.Context) ([]domain.CartItem, error) {
	if s.cartErr != nil {
		return nil, s.cartErr
	}
	var res []domain.CartItem
	if len(s.cartResults) > 0 {
		idx := s.cartCalls
		if idx >= len(s.cartResults) {
			idx = len(s.cartResults) - 1
		}
		res = s.cartResults[idx]
	}
	s.cartCalls++
	return res, nil
}

func (s *stubAPI) AddToCart(_ context.Context, productID int64, quantity int) error {
	s.lastAddProduct = productID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubAPI) UpdateCartItem(_ context.Context, itemID int64, quantity int) error {
	s.lastUpdateItem = itemID
	s.lastUpdateQty = quantity
	return s.updateErr
}

func (s *stubAPI) RemoveCartItem(_ context.Context, itemID int64) error {
	s.lastRemoveItem = itemID
	return s.removeErr
}

func (s *stubAPI) ValidateCoupon(_ context.Context, code string, amount float64) (*domain.Coupon, error) {
	s.lastCouponCode = code
	s.lastCouponAmt = amount
	if s.couponErr != nil {
		return nil, s.couponErr
	}
	return s.coupon, nil
}

func items(totals ...float64) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(totals))
	for i, total := range totals {
		out = append(out, domain.CartItem{ID: int64(i + 1), Quantity: 1, TotalPrice: total})
	}
	return out
}

func mustEqual(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFetchCartReplacesItems(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(10, 20)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(s.Items()))
	}
	if s.Loading() {
		t.Fatal("loading should be cleared after fetch")
	}
}

func TestFetchCartFailureKeepsItems(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(10, 20)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	api.cartErr = errors.New("boom")
	if err := s.FetchCart(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if len(s.Items()) != 2 {
		t.Fatalf("failed fetch must keep previous items, got %d", len(s.Items()))
	}
	if s.Loading() {
		t.Fatal("loading should be cleared after a failed fetch")
	}
}

func TestAddToCartResyncs(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(15)}}
	s := New(api)
	if err := s.AddToCart(context.Background(), 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastAddProduct != 7 || api.lastAddQty != 3 {
		t.Fatalf("unexpected add call: product=%d qty=%d", api.lastAddProduct, api.lastAddQty)
	}
	if api.cartCalls != 1 {
		t.Fatalf("expected one refetch, got %d", api.cartCalls)
	}
	if len(s.Items()) != 1 {
		t.Fatalf("expected resynced items, got %d", len(s.Items()))
	}
}

func TestAddToCartErrorSkipsResync(t *testing.T) {
	api := &stubAPI{addErr: errors.New("out of stock")}
	s := New(api)
	if err := s.AddToCart(context.Background(), 7, 1); err == nil {
		t.Fatal("expected error")
	}
	if api.cartCalls != 0 {
		t.Fatal("failed mutation must not refetch")
	}
}

func TestUpdateQtyAndRemoveResync(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(5)}}
	s := New(api)
	if err := s.UpdateQty(context.Background(), 2, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastUpdateItem != 2 || api.lastUpdateQty != 4 {
		t.Fatalf("unexpected update call: item=%d qty=%d", api.lastUpdateItem, api.lastUpdateQty)
	}
	if err := s.RemoveItem(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastRemoveItem != 2 {
		t.Fatalf("unexpected remove call: item=%d", api.lastRemoveItem)
	}
	if api.cartCalls != 2 {
		t.Fatalf("expected two refetches, got %d", api.cartCalls)
	}
}

func TestTotalSumsServerLineTotals(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(12.5, 7.49)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustEqual(t, s.Total(), "19.99")
}

func TestCountSumsQuantities(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{{
		{ID: 1, Quantity: 2, TotalPrice: 10},
		{ID: 2, Quantity: 3, TotalPrice: 15},
	}}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Count(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestDiscountPercentage(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(60)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.ApplyCoupon(domain.Coupon{Code: "ten", DiscountType: domain.DiscountPercentage, DiscountValue: 10})
	mustEqual(t, s.Discount(), "6")
	mustEqual(t, s.FinalTotal(), "54")
}

func TestDiscountFixed(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(60)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.ApplyCoupon(domain.Coupon{Code: "SAVE10", DiscountType: domain.DiscountFixed, DiscountValue: 10})
	mustEqual(t, s.Discount(), "10")
	mustEqual(t, s.FinalTotal(), "50")
}

func TestFixedDiscountExceedingTotalClampsFinalOnly(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(8)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.ApplyCoupon(domain.Coupon{Code: "BIG", DiscountType: domain.DiscountFixed, DiscountValue: 20})
	mustEqual(t, s.Discount(), "20")
	mustEqual(t, s.FinalTotal(), "0")
}

func TestNoCouponMeansZeroDiscount(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(30)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustEqual(t, s.Discount(), "0")
	mustEqual(t, s.FinalTotal(), "30")
}

func TestClearCoupon(t *testing.T) {
	s := New(&stubAPI{})
	s.ApplyCoupon(domain.Coupon{Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: 5})
	s.ClearCoupon()
	if s.Coupon() != nil {
		t.Fatal("expected coupon cleared")
	}
}

func TestRedeemCouponAppliesOnSuccess(t *testing.T) {
	api := &stubAPI{
		cartResults: [][]domain.CartItem{items(40)},
		coupon:      &domain.Coupon{Code: "WELCOME10", DiscountType: domain.DiscountPercentage, DiscountValue: 10},
	}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coupon, err := s.RedeemCoupon(context.Background(), "welcome10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coupon.Code != "WELCOME10" {
		t.Fatalf("unexpected coupon: %+v", coupon)
	}
	if api.lastCouponAmt != 40 {
		t.Fatalf("expected validation against total 40, got %v", api.lastCouponAmt)
	}
	if s.Coupon() == nil {
		t.Fatal("expected coupon applied")
	}
}

func TestRedeemCouponRejectionClearsActiveCoupon(t *testing.T) {
	api := &stubAPI{cartResults: [][]domain.CartItem{items(40)}}
	s := New(api)
	if err := s.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.ApplyCoupon(domain.Coupon{Code: "OLD", DiscountType: domain.DiscountFixed, DiscountValue: 5})

	api.couponErr = errors.New("Coupon has expired")
	if _, err := s.RedeemCoupon(context.Background(), "EXPIRED20"); err == nil {
		t.Fatal("expected rejection error")
	}
	if s.Coupon() != nil {
		t.Fatal("rejected redemption must clear the active coupon")
	}
}
