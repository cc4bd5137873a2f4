// Package session holds the process-wide authentication state: who is
// signed in, restored from the credential store at startup and mutated only
// by the login/logout flows.
package session

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vrocha/admincli/internal/client/credstore"
	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/logging"
)

// Identity is the minimal signed-in identity. After a token-only
// authentication response the id may be empty and the name blank; the
// design never guarantees a full identity is known.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// loginExecutor is the slice of the login use-case the session needs.
type loginExecutor interface {
	Execute(ctx context.Context, email, password string) (*gateway.LoginResult, error)
}

// Session is safe for concurrent use; concurrent logins resolve
// last-write-wins.
type Session struct {
	login loginExecutor
	auth  gateway.AuthGateway
	store credstore.Store
	log   logging.Logger

	mu   sync.Mutex
	user *Identity
}

func New(login loginExecutor, auth gateway.AuthGateway, store credstore.Store, log logging.Logger) *Session {
	return &Session{login: login, auth: auth, store: store, log: log}
}

// Restore initializes the session from a previously persisted token. With a
// token present the user is considered signed in, with whatever identity can
// be read from the token's claims (unverified; the server re-checks every
// call anyway).
func (s *Session) Restore(ctx context.Context) {
	token := s.store.Get(ctx, credstore.KeyAuthToken)
	if token == "" {
		return
	}

	id := identityFromToken(token)
	s.mu.Lock()
	s.user = &id
	s.mu.Unlock()
	s.log.Info(ctx, "session restored from stored token")
}

// Login authenticates and records the resulting identity. The token itself
// is persisted by the auth gateway as part of a successful login.
func (s *Session) Login(ctx context.Context, email, password string) error {
	result, err := s.login.Execute(ctx, email, password)
	if err != nil {
		return err
	}

	var id Identity
	if result.User != nil {
		id = Identity{ID: string(result.User.ID), Name: result.User.Name, Email: result.User.Email}
	} else {
		// Token-only response: salvage what the claims offer, falling
		// back to the address the user typed.
		id = identityFromToken(result.Token)
		if id.Email == "" {
			id.Email = email
		}
	}

	s.mu.Lock()
	s.user = &id
	s.mu.Unlock()
	return nil
}

// Logout ends the session with the gateway, drops the persisted token and
// clears the in-memory identity.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		return err
	}
	s.store.Remove(ctx, credstore.KeyAuthToken)
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Current returns the signed-in identity, or nil.
func (s *Session) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether an identity is present.
func (s *Session) LoggedIn() bool {
	return s.Current() != nil
}

// identityFromToken extracts name/email/subject from a JWT without
// verifying its signature. Verification is the server's job; locally the
// claims only decorate the prompt. A token that does not parse yields an
// empty identity.
func identityFromToken(token string) Identity {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Identity{}
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}
	}

	id := Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		id.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	return id
}
