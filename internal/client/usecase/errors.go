package usecase

import "errors"

var (
	// ErrMissingUserID is returned by UpdateUser when no record id was
	// supplied.
	ErrMissingUserID = errors.New("ID do usuário é obrigatório")

	// Constructor-time configuration errors: a required collaborator was
	// not supplied. These indicate a wiring bug and fail fast.
	ErrNilUserGateway = errors.New("UserGateway é obrigatório")
	ErrNilAuthGateway = errors.New("AuthGateway é obrigatório")
)
