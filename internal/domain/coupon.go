package domain

import (
	"strings"
	"time"
)

// DiscountType selects how a coupon's discount value is interpreted.
type DiscountType string

const (
	// DiscountPercentage means DiscountValue is a percentage of the cart total (0-100).
	DiscountPercentage DiscountType = "PERCENTAGE"
	// DiscountFixed means DiscountValue is a flat amount.
	DiscountFixed DiscountType = "FIXED"
)

// Coupon is a named discount rule validated server-side and applied client-side.
type Coupon struct {
	ID                int64        `json:"id,omitempty"`
	Code              string       `json:"code"`
	DiscountType      DiscountType `json:"discountType"`
	DiscountValue     float64      `json:"discountValue"`
	MinPurchaseAmount *float64     `json:"minPurchaseAmount,omitempty"`
	ExpirationDate    *time.Time   `json:"expirationDate,omitempty"`
	Active            bool         `json:"isActive"`
}

// NormalizeCouponCode upper-cases and trims a user-entered coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
