package upstream

import (
	"context"
	"fmt"
	"net/http"

	"medibook/models"
)

// LoginInput is forwarded verbatim to the upstream login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates against the upstream API and returns the user
// snapshot along with the upstream bearer token.
func (c *Client) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, in, &resp); err != nil {
		return nil, "", fmt.Errorf("login failed: %w", err)
	}
	return &resp.User, resp.Token, nil
}

// Register creates a new upstream account and signs it in.
func (c *Client) Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, in, &resp); err != nil {
		return nil, "", fmt.Errorf("registration failed: %w", err)
	}
	return &resp.User, resp.Token, nil
}

// GetProfile fetches the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/profile", token, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &resp.User, nil
}

// UpdateProfile applies the editable profile fields upstream and returns
// the updated snapshot.
func (c *Client) UpdateProfile(ctx context.Context, token string, in models.ProfileUpdate) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/profile", token, nil, in, &resp); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &resp.User, nil
}
