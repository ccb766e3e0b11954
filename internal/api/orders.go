package api

import (
	"context"
	"net/url"
	"strconv"

	"healthshop-client/internal/domain"
)

// CreateOrderInput is the checkout submission payload.
type CreateOrderInput struct {
	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingCity    string `json:"shippingCity"`
	ShippingState   string `json:"shippingState"`
	ShippingZip     string `json:"shippingZip"`
	ShippingPhone   string `json:"shippingPhone,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	CouponCode      string `json:"couponCode,omitempty"`
}

// CreateOrder places an order from the current server cart.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.post(ctx, "/api/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderHistory lists the caller's past orders, newest first.
func (c *Client) OrderHistory(ctx context.Context, page, size int) (*domain.Page[domain.Order], error) {
	q := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	var out domain.Page[domain.Order]
	if err := c.get(ctx, "/api/orders/history", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
