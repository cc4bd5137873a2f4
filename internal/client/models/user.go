// Package models defines the user record and the form input/payload types
// exchanged with the administration API.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is a string identifier that tolerates numeric values on the wire.
// Some backends return user ids as JSON numbers; they are coerced to their
// decimal string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// User is a persisted user record. The password is write-only and never
// appears on read paths.
type User struct {
	ID    FlexID `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf,omitempty"`
}

// UserInput is the candidate record collected by the create/edit form.
// All fields are raw strings exactly as typed; validation decides what is
// acceptable per mode.
type UserInput struct {
	ID       string
	Name     string
	Email    string
	CPF      string
	Password string
}

// UserPayload is the wire shape for create and update calls. CPF and
// password are omitted entirely when empty: on update an untouched password
// means "leave unchanged" and must never be transmitted.
type UserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf,omitempty"`
	Password string `json:"password,omitempty"`
}

// String renders an id for display, falling back to "-" when absent.
func (f FlexID) String() string {
	if f == "" {
		return "-"
	}
	return string(f)
}

// ParseID validates that s looks like a usable identifier (non-blank).
func ParseID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	// Purely numeric ids are normalized (drop leading zeros like "007" -> "7").
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	return s, true
}
