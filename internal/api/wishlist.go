package api

import (
	"context"
	"fmt"

	"healthshop-client/internal/domain"
)

// Wishlist lists the saved products.
func (c *Client) Wishlist(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, productID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/wishlist/%d", productID), nil, nil)
}

// RemoveFromWishlist unsaves a product.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/wishlist/%d", productID))
}

// InWishlist checks membership server-side.
func (c *Client) InWishlist(ctx context.Context, productID int64) (bool, error) {
	var out bool
	if err := c.get(ctx, fmt.Sprintf("/api/wishlist/check/%d", productID), nil, &out); err != nil {
		return false, err
	}
	return out, nil
}
