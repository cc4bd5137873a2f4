package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vrocha/admincli/internal/client/models"
)

// loginSchema validates sign-in credentials. The password intentionally has
// no minimum length here: accounts created before the 6-character rule must
// still be able to sign in. Create and update do enforce the minimum.
type loginSchema struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required"`
}

// createSchema validates a brand new user. Every field is required.
type createSchema struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,emailshape"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateSchema validates an edit. CPF and password may be omitted; when
// present they must satisfy the same rules as on create. Name and email
// remain mandatory.
type updateSchema struct {
	ID       string `json:"id" validate:"omitempty"`
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,emailshape"`
	CPF      string `json:"cpf" validate:"omitempty,cpf"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// messages maps field name and violated tag to the user-facing text.
var messages = map[string]map[string]string{
	"name": {
		"required": "Nome é obrigatório",
		"min":      "Nome deve ter no mínimo 3 caracteres",
		"max":      "Nome não pode ter mais de 100 caracteres",
	},
	"email": {
		"required":   "Email é obrigatório",
		"emailshape": "Email inválido",
	},
	"cpf": {
		"required": "CPF é obrigatório",
		"cpf":      "CPF inválido",
	},
	"password": {
		"required": "Senha é obrigatória",
		"min":      "Senha deve ter no mínimo 6 caracteres",
	},
}

// ValidateLogin checks sign-in credentials.
func ValidateLogin(email, password string) *Error {
	return check(loginSchema{Email: email, Password: password})
}

// ValidateCreate checks a candidate record against the create schema.
func ValidateCreate(in models.UserInput) *Error {
	return check(createSchema{
		Name:     in.Name,
		Email:    in.Email,
		CPF:      in.CPF,
		Password: in.Password,
	})
}

// ValidateUpdate checks a candidate record against the update schema.
func ValidateUpdate(in models.UserInput) *Error {
	return check(updateSchema{
		ID:       in.ID,
		Name:     in.Name,
		Email:    in.Email,
		CPF:      in.CPF,
		Password: in.Password,
	})
}

// check runs the validator over schema and translates the outcome into an
// ordered *Error, one message per field, or nil when the record is valid.
func check(schema any) *Error {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator only returns InvalidValidationError for non-struct
		// input, which would be a programming mistake here.
		panic(err)
	}

	out := &Error{}
	for _, fe := range verrs {
		field := fe.Field()
		if out.Has(field) {
			continue
		}
		out.Fields = append(out.Fields, FieldError{Field: field, Message: message(field, fe.Tag())})
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

func message(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Campo %s inválido", field)
}
