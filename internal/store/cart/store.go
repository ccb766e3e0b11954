// Package cart holds the shopping cart lines plus an optional coupon and
// derives the totals the cart and checkout views consume. The server cart is
// authoritative: every mutation resynchronizes with a full refetch and line
// totals are taken from the server as-is, never recomputed from unit prices.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"healthshop-client/internal/domain"
)

type cartAPI interface {
	Cart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int64) error
	ValidateCoupon(ctx context.Context, code string, amount float64) (*domain.Coupon, error)
}

var oneHundred = decimal.NewFromInt(100)

// Store is the cart/pricing state manager.
type Store struct {
	api cartAPI

	mu      sync.RWMutex
	items   []domain.CartItem
	coupon  *domain.Coupon
	loading bool
}

// New builds an empty Store over the given API client.
func New(a cartAPI) *Store {
	return &Store{api: a}
}

// FetchCart replaces the items wholesale from the authoritative server cart.
// On failure the previous items are kept and the loading flag is cleared;
// there is no retry.
func (s *Store) FetchCart(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.api.Cart(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// AddToCart posts the addition and resynchronizes. Callers pass quantity >= 1.
// A failed refetch after a successful mutation is not reported; the next fetch
// reconciles.
func (s *Store) AddToCart(ctx context.Context, productID int64, quantity int) error {
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	_ = s.FetchCart(ctx)
	return nil
}

// UpdateQty sets a line item's quantity and resynchronizes. Callers clamp to >= 1.
func (s *Store) UpdateQty(ctx context.Context, itemID int64, quantity int) error {
	if err := s.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		return err
	}
	_ = s.FetchCart(ctx)
	return nil
}

// RemoveItem deletes a line item and resynchronizes.
func (s *Store) RemoveItem(ctx context.Context, itemID int64) error {
	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		return err
	}
	_ = s.FetchCart(ctx)
	return nil
}

// ApplyCoupon attaches a coupon locally. The coupon is trusted: validation
// against the backend happens before this call, either by the caller or via
// RedeemCoupon.
func (s *Store) ApplyCoupon(c domain.Coupon) {
	c.Code = domain.NormalizeCouponCode(c.Code)
	s.mu.Lock()
	s.coupon = &c
	s.mu.Unlock()
}

// ClearCoupon detaches any active coupon.
func (s *Store) ClearCoupon() {
	s.mu.Lock()
	s.coupon = nil
	s.mu.Unlock()
}

// RedeemCoupon validates code against the backend for the current total and
// applies it. A rejected code clears any active coupon and returns the
// backend's error for display.
func (s *Store) RedeemCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	amount, _ := s.Total().Float64()
	coupon, err := s.api.ValidateCoupon(ctx, code, amount)
	if err != nil {
		s.ClearCoupon()
		return nil, err
	}
	s.ApplyCoupon(*coupon)
	return coupon, nil
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Coupon returns the active coupon, or nil.
func (s *Store) Coupon() *domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

// Loading reports whether a fetch is in flight. Drives spinners only.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Total sums the server-computed line totals.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalLocked()
}

func (s *Store) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	return total
}

// Discount derives the coupon discount against the current total. A fixed
// coupon returns its value even when that exceeds the total; clamping happens
// in FinalTotal only.
func (s *Store) Discount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discountLocked()
}

func (s *Store) discountLocked() decimal.Decimal {
	if s.coupon == nil {
		return decimal.Zero
	}
	value := decimal.NewFromFloat(s.coupon.DiscountValue)
	if s.coupon.DiscountType == domain.DiscountFixed {
		return value
	}
	return s.totalLocked().Mul(value).Div(oneHundred)
}

// FinalTotal is the total after discount, clamped to never go negative.
func (s *Store) FinalTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	final := s.totalLocked().Sub(s.discountLocked())
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// Count sums quantities across line items, for the cart badge.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
