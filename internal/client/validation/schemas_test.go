package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrocha/admincli/internal/client/models"
)

func validCreateInput() models.UserInput {
	return models.UserInput{
		Name:     "João Silva",
		Email:    "joao@example.com",
		CPF:      "52998224725",
		Password: "senha123",
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	assert.Nil(t, ValidateCreate(validCreateInput()))
}

func TestValidateCreate_Empty(t *testing.T) {
	verr := ValidateCreate(models.UserInput{})
	require.NotNil(t, verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		assert.NotEmpty(t, fe.Message)
		fields = append(fields, fe.Field)
	}
	// One entry per field, in schema declaration order.
	assert.Equal(t, []string{"name", "email", "cpf", "password"}, fields)
}

func TestValidateCreate_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UserInput)
		field   string
		message string
	}{
		{"missing name", func(in *models.UserInput) { in.Name = "" }, "name", "Nome é obrigatório"},
		{"short name", func(in *models.UserInput) { in.Name = "Jo" }, "name", "Nome deve ter no mínimo 3 caracteres"},
		{"long name", func(in *models.UserInput) { in.Name = strings.Repeat("a", 101) }, "name", "Nome não pode ter mais de 100 caracteres"},
		{"missing email", func(in *models.UserInput) { in.Email = "" }, "email", "Email é obrigatório"},
		{"malformed email", func(in *models.UserInput) { in.Email = "joao@example" }, "email", "Email inválido"},
		{"missing cpf", func(in *models.UserInput) { in.CPF = "" }, "cpf", "CPF é obrigatório"},
		{"invalid cpf", func(in *models.UserInput) { in.CPF = "11111111111" }, "cpf", "CPF inválido"},
		{"missing password", func(in *models.UserInput) { in.Password = "" }, "password", "Senha é obrigatória"},
		{"short password", func(in *models.UserInput) { in.Password = "12345" }, "password", "Senha deve ter no mínimo 6 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			verr := ValidateCreate(in)
			require.NotNil(t, verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.message, verr.Fields[0].Message)
		})
	}
}

func TestValidateUpdate_OptionalFields(t *testing.T) {
	// Anything the create schema accepts must pass update with the
	// optional fields simply omitted.
	in := validCreateInput()
	in.CPF = ""
	in.Password = ""
	assert.Nil(t, ValidateUpdate(in))

	// Present optional fields still have to be valid.
	in.CPF = "12345678900"
	verr := ValidateUpdate(in)
	require.NotNil(t, verr)
	assert.Equal(t, "CPF inválido", verr.Message("cpf"))

	in.CPF = ""
	in.Password = "123"
	verr = ValidateUpdate(in)
	require.NotNil(t, verr)
	assert.Equal(t, "Senha deve ter no mínimo 6 caracteres", verr.Message("password"))
}

func TestValidateUpdate_RequiredFields(t *testing.T) {
	verr := ValidateUpdate(models.UserInput{ID: "1"})
	require.NotNil(t, verr)
	assert.Equal(t, "Nome é obrigatório", verr.Message("name"))
	assert.Equal(t, "Email é obrigatório", verr.Message("email"))
	assert.False(t, verr.Has("cpf"))
	assert.False(t, verr.Has("password"))
	assert.False(t, verr.Has("id"))
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin("joao@example.com", "senha123"))

	// No minimum length at login: legacy short passwords still sign in.
	assert.Nil(t, ValidateLogin("joao@example.com", "abc"))

	verr := ValidateLogin("", "")
	require.NotNil(t, verr)
	assert.Equal(t, "Email é obrigatório", verr.Message("email"))
	assert.Equal(t, "Senha é obrigatória", verr.Message("password"))

	verr = ValidateLogin("not-an-email", "x")
	require.NotNil(t, verr)
	assert.Equal(t, "Email inválido", verr.Message("email"))
	assert.False(t, verr.Has("password"))
}

func TestErrorMessageAndError(t *testing.T) {
	verr := ValidateCreate(models.UserInput{})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Error(), "Nome é obrigatório")
	assert.Equal(t, "", verr.Message("unknown"))
}
