package httpapi

import (
	"context"
	"net/http"

	"github.com/vrocha/admincli/internal/client/credstore"
	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/client/models"
)

// loginResponse mirrors the authentication endpoint body. Servers differ:
// some return the full user alongside the token, some return the token only.
type loginResponse struct {
	ID    models.FlexID `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Token string        `json:"token"`
}

// Login authenticates against POST /api/auth/login and normalizes the
// response. A received token is persisted immediately so subsequent record
// calls pick it up.
func (c *Client) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", body, false)
	if err != nil {
		return nil, err
	}

	var payload loginResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	if payload.Token != "" {
		c.store.Set(ctx, credstore.KeyAuthToken, payload.Token)
	}

	if payload.ID != "" {
		user := &models.User{ID: payload.ID, Name: payload.Name, Email: payload.Email}
		if user.Email == "" {
			user.Email = email
		}
		return &gateway.LoginResult{User: user, Token: payload.Token}, nil
	}

	if payload.Token != "" {
		return &gateway.LoginResult{Token: payload.Token}, nil
	}

	return nil, gateway.ErrInvalidLoginResponse
}

// Logout ends the session. The API keeps no server-side session state, so
// signing out is a local affair; the method exists to satisfy the contract
// and to host a revocation call if the API ever grows one.
func (c *Client) Logout(ctx context.Context) error {
	return nil
}
