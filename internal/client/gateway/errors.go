package gateway

import (
	"errors"
	"fmt"
)

// ErrInvalidLoginResponse signals a 2xx authentication response carrying
// neither a token nor a user identity.
var ErrInvalidLoginResponse = errors.New("resposta inválida do servidor de autenticação")

// HTTPError is a non-2xx response from either gateway. Message holds the
// server-supplied text when one could be extracted from the body.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("requisição falhou com status %d", e.Status)
}

// IsNotFound reports whether err is an *HTTPError with status 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == 404
}
