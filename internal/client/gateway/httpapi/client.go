// Package httpapi implements the gateway contracts over the administration
// REST API using plain JSON request/response bodies.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vrocha/admincli/internal/client/credstore"
	"github.com/vrocha/admincli/internal/logging"
)

// Client talks to the administration API. It implements both
// gateway.AuthGateway and gateway.UserGateway.
type Client struct {
	baseURL string
	http    *http.Client
	store   credstore.Store
	log     logging.Logger
}

// New builds a Client for the API rooted at baseURL. The token persisted in
// store, when present, is attached as a bearer credential to record calls.
func New(baseURL string, timeout time.Duration, store credstore.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// newRequest assembles a JSON request for path (which must start with "/").
// Every request carries a correlation id; authenticated requests also carry
// the bearer token when one is stored.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, withAuth bool) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if withAuth {
		if token := c.store.Get(ctx, credstore.KeyAuthToken); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do executes req and, on a 2xx response, decodes the body into out (when
// out is non-nil). Non-2xx responses become *gateway.HTTPError with the
// server message extracted from the body.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro de conexão com a API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro lendo resposta da API: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug(req.Context(), "api request failed",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return httpError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro decodificando resposta da API: %w", err)
	}
	return nil
}
