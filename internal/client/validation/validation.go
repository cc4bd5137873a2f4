// Package validation implements the client-side validation layer: pure field
// predicates (email shape, CPF checksum) and the per-operation record schemas
// for login, create and update.
//
// Schemas are tagged structs evaluated by go-playground/validator. Field
// order in the struct is the schema declaration order; for each field only
// the first violated rule produces a message.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailShapeRe is a deliberately permissive address check: something before
// the @, something after, and at least one dot in the domain. Full RFC
// validation is left to the server.
var emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailShape reports whether value looks like local@domain.tld.
func EmailShape(value string) bool {
	return emailShapeRe.MatchString(value)
}

// NonBlank reports whether value contains anything besides whitespace.
func NonBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return ValidCPF(fl.Field().String())
	}))
	must(v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return EmailShape(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
