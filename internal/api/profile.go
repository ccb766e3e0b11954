package api

import (
	"context"

	"healthshop-client/internal/domain"
)

// HealthProfile fetches the current user's health profile.
func (c *Client) HealthProfile(ctx context.Context) (*domain.HealthProfile, error) {
	var out domain.HealthProfile
	if err := c.get(ctx, "/api/user/health-profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHealthProfile replaces the current user's health profile.
func (c *Client) UpdateHealthProfile(ctx context.Context, p domain.HealthProfile) (*domain.HealthProfile, error) {
	var out domain.HealthProfile
	if err := c.put(ctx, "/api/user/health-profile", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
