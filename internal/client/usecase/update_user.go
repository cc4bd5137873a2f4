package usecase

import (
	"context"

	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/client/models"
	"github.com/vrocha/admincli/internal/client/validation"
)

// UpdateUser edits an existing user record.
type UpdateUser struct {
	users gateway.UserGateway
}

// NewUpdateUser wires the use-case. A nil gateway is a configuration error.
func NewUpdateUser(users gateway.UserGateway) (*UpdateUser, error) {
	if users == nil {
		return nil, ErrNilUserGateway
	}
	return &UpdateUser{users: users}, nil
}

// Execute validates in against the update schema and delegates to the
// gateway. The payload carries name and email always; CPF and password are
// included only when the candidate provides them — an untouched password
// means "leave unchanged" and is never transmitted.
func (uc *UpdateUser) Execute(ctx context.Context, id string, in models.UserInput) (*models.User, error) {
	if id == "" {
		return nil, ErrMissingUserID
	}
	if verr := validation.ValidateUpdate(in); verr != nil {
		return nil, verr
	}

	payload := models.UserPayload{
		Name:  in.Name,
		Email: in.Email,
	}
	if in.CPF != "" {
		payload.CPF = in.CPF
	}
	if in.Password != "" {
		payload.Password = in.Password
	}
	return uc.users.Update(ctx, id, payload)
}
