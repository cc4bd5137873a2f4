package httpapi

import (
	"encoding/json"
	"strings"

	"github.com/vrocha/admincli/internal/client/gateway"
)

// httpError builds a *gateway.HTTPError from a failed response. The message
// comes from a JSON "message" field when the body parses as an object, else
// from the raw text body; an empty body yields the generic status message.
func httpError(status int, body []byte) *gateway.HTTPError {
	return &gateway.HTTPError{Status: status, Message: extractMessage(body)}
}

func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if strings.HasPrefix(text, "{") {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
		// A JSON object without a usable message is not worth echoing
		// to the user verbatim.
		return ""
	}
	return text
}
