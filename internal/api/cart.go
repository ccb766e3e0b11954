package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"healthshop-client/internal/domain"
)

type addToCartInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Cart fetches the authoritative cart contents.
func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := c.get(ctx, "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToCart adds quantity units of a product to the server cart.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	return c.post(ctx, "/api/cart", addToCartInput{ProductID: productID, Quantity: quantity}, nil)
}

// UpdateCartItem sets the quantity of an existing line item.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	q := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	return c.put(ctx, fmt.Sprintf("/api/cart/%d", itemID), q, nil, nil)
}

// RemoveCartItem deletes a line item.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/cart/%d", itemID))
}

type validateCouponInput struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// ValidateCoupon asks the backend whether code applies to an order of the
// given amount. A rejection carries the human-readable reason in the error.
func (c *Client) ValidateCoupon(ctx context.Context, code string, amount float64) (*domain.Coupon, error) {
	var out domain.Coupon
	in := validateCouponInput{Code: domain.NormalizeCouponCode(code), Amount: amount}
	if err := c.post(ctx, "/api/coupons/validate", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
