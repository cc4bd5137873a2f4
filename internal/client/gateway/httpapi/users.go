package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vrocha/admincli/internal/client/models"
)

// ListPaged fetches one page of users from GET /api/user/paged.
//
// The list endpoint has been seen wrapping the page in "data" or "items",
// or returning a bare array; all three shapes are accepted.
func (c *Client) ListPaged(ctx context.Context, page, pageSize int) ([]models.User, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprint(page))
	query.Set("pageSize", fmt.Sprint(pageSize))

	req, err := c.newRequest(ctx, http.MethodGet, "/api/user/paged?"+query.Encode(), nil, true)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	return normalizeUserList(raw)
}

func normalizeUserList(raw json.RawMessage) ([]models.User, error) {
	if len(raw) == 0 {
		return []models.User{}, nil
	}

	var envelope struct {
		Data  []models.User `json:"data"`
		Items []models.User `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Data != nil {
			return envelope.Data, nil
		}
		if envelope.Items != nil {
			return envelope.Items, nil
		}
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err == nil {
		return users, nil
	}
	return []models.User{}, nil
}

// GetByID fetches a single user from GET /api/user/{id}.
func (c *Client) GetByID(ctx context.Context, id string) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/user/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create posts a new user to POST /api/user and returns the stored record.
func (c *Client) Create(ctx context.Context, payload models.UserPayload) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/user", payload, true)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update sends changed fields to PUT /api/user/{id}.
func (c *Client) Update(ctx context.Context, id string, payload models.UserPayload) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/api/user/"+url.PathEscape(id), payload, true)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user via DELETE /api/user/{id}.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/user/"+url.PathEscape(id), nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
