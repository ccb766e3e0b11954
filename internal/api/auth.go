package api

import (
	"context"

	"healthshop-client/internal/domain"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// Login exchanges credentials for a token plus profile payload.
func (c *Client) Login(ctx context.Context, in LoginInput) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.post(ctx, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account; the response shape matches Login so callers
// treat registration as an auto-login.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.post(ctx, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
