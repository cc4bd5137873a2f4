package validation

import "strings"

// FieldError is a single field violation: the wire name of the field and a
// human-readable message.
type FieldError struct {
	Field   string
	Message string
}

// Error carries the ordered field violations produced by a schema. Fields
// appear in schema declaration order, at most one entry per field.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Message returns the message for field, or "" when the field is valid.
func (e *Error) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Has reports whether field carries a violation.
func (e *Error) Has(field string) bool {
	return e.Message(field) != ""
}
