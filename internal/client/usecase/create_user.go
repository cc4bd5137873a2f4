// Package usecase contains the orchestration layer: each use-case validates
// a candidate record against the matching schema and then delegates to a
// gateway, translating outcomes into the client error taxonomy. No use-case
// retries; every call is a single attempt.
package usecase

import (
	"context"

	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/client/models"
	"github.com/vrocha/admincli/internal/client/validation"
)

// CreateUser creates a new user record.
type CreateUser struct {
	users gateway.UserGateway
}

// NewCreateUser wires the use-case. A nil gateway is a configuration error.
func NewCreateUser(users gateway.UserGateway) (*CreateUser, error) {
	if users == nil {
		return nil, ErrNilUserGateway
	}
	return &CreateUser{users: users}, nil
}

// Execute validates in against the create schema and, when valid, delegates
// to the gateway. On a schema violation the returned error is a
// *validation.Error and no network call is made; gateway failures propagate
// unchanged.
func (uc *CreateUser) Execute(ctx context.Context, in models.UserInput) (*models.User, error) {
	if verr := validation.ValidateCreate(in); verr != nil {
		return nil, verr
	}

	payload := models.UserPayload{
		Name:     in.Name,
		Email:    in.Email,
		CPF:      in.CPF,
		Password: in.Password,
	}
	return uc.users.Create(ctx, payload)
}
