// Package gateway declares the capability contracts the client core consumes
// to reach the administration API. Implementations live in subpackages; the
// core never talks to the network directly.
package gateway

import (
	"context"

	"github.com/vrocha/admincli/internal/client/models"
)

// LoginResult is the normalized outcome of a successful authentication.
// User may be nil when the server answers with a token only; callers must
// not assume a full identity is known.
type LoginResult struct {
	User  *models.User
	Token string
}

// AuthGateway performs authentication calls.
type AuthGateway interface {
	// Login exchanges credentials for a token (and, when the server
	// provides one, a user identity). Non-2xx responses surface as
	// *HTTPError carrying the server-supplied message when available.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout ends the session.
	Logout(ctx context.Context) error
}

// UserGateway performs user record CRUD.
//
// All calls attach a bearer credential header when a token is persisted;
// the absence of a token is not a client-side error (authorization is
// enforced server-side). Non-2xx responses surface as *HTTPError.
type UserGateway interface {
	ListPaged(ctx context.Context, page, pageSize int) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, payload models.UserPayload) (*models.User, error)
	Update(ctx context.Context, id string, payload models.UserPayload) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
