package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"healthshop-client/internal/domain"
)

// ProductQuery mirrors the catalog listing filters.
type ProductQuery struct {
	Search     string
	CategoryID int64
	HealthGoal string
	AgeGroup   string
	MinPrice   float64
	MaxPrice   float64
	SortBy     string // price, rating, popularity, newest
	SortDir    string // asc, desc
	Page       int
	Size       int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.HealthGoal != "" {
		v.Set("healthGoal", q.HealthGoal)
	}
	if q.AgeGroup != "" {
		v.Set("ageGroup", q.AgeGroup)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		v.Set("sortDir", q.SortDir)
	}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}

// Products lists the catalog with filters and pagination.
func (c *Client) Products(ctx context.Context, q ProductQuery) (*domain.Page[domain.Product], error) {
	var out domain.Page[domain.Product]
	if err := c.get(ctx, "/api/products", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/products/featured", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TrendingProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/products/trending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NewArrivals(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/products/new-arrivals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductsByHealthGoal(ctx context.Context, goal string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/products/health-goal/"+url.PathEscape(goal), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.get(ctx, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
