package usecase

import (
	"context"

	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/client/validation"
)

// Login authenticates a user.
type Login struct {
	auth gateway.AuthGateway
}

// NewLogin wires the use-case. A nil gateway is a configuration error.
func NewLogin(auth gateway.AuthGateway) (*Login, error) {
	if auth == nil {
		return nil, ErrNilAuthGateway
	}
	return &Login{auth: auth}, nil
}

// Execute validates the credentials against the login schema and delegates
// to the auth gateway. Note the login schema enforces no password minimum
// length; accounts predating the 6-character rule can still sign in.
func (uc *Login) Execute(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	if verr := validation.ValidateLogin(email, password); verr != nil {
		return nil, verr
	}
	return uc.auth.Login(ctx, email, password)
}
