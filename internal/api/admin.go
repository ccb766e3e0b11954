package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"healthshop-client/internal/domain"
)

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers           int64            `json:"totalUsers"`
	TotalProducts        int64            `json:"totalProducts"`
	TotalOrders          int64            `json:"totalOrders"`
	TotalRevenue         float64          `json:"totalRevenue"`
	CategoryDistribution []map[string]any `json:"categoryDistribution,omitempty"`
	RecentProducts       []domain.Product `json:"recentProducts,omitempty"`
}

func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	if err := c.get(ctx, "/api/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminAIStats(ctx context.Context) (*domain.AdminAIStats, error) {
	var out domain.AdminAIStats
	if err := c.get(ctx, "/api/ai/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductInput is the admin product create/update payload.
type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Ingredients   string   `json:"ingredients,omitempty"`
	Benefits      string   `json:"benefits,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	CategoryID    int64    `json:"categoryId,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	HealthGoals   []string `json:"healthGoals,omitempty"`
	Dosage        string   `json:"dosage,omitempty"`
	Featured      bool     `json:"featured"`
}

func (c *Client) AdminCreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.post(ctx, "/api/admin/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.put(ctx, fmt.Sprintf("/api/admin/products/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/products/%d", id))
}

func (c *Client) AdminOrders(ctx context.Context, page, size int) (*domain.Page[domain.Order], error) {
	q := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	var out domain.Page[domain.Order]
	if err := c.get(ctx, "/api/admin/orders", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	q := url.Values{"status": []string{status}}
	var out domain.Order
	if err := c.put(ctx, fmt.Sprintf("/api/admin/orders/%d/status", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.get(ctx, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCoupons(ctx context.Context) ([]domain.Coupon, error) {
	var out []domain.Coupon
	if err := c.get(ctx, "/api/admin/coupons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateCoupon(ctx context.Context, in domain.Coupon) (*domain.Coupon, error) {
	var out domain.Coupon
	in.Code = domain.NormalizeCouponCode(in.Code)
	if err := c.post(ctx, "/api/admin/coupons", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteCoupon(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/coupons/%d", id))
}
