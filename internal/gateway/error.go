package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is any non-2xx response from the backend. The server's own error
// string is kept verbatim; screens show it to the user when present.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Field returns the first validation message the server attached to a named
// field, or "" when there is none.
func (e *APIError) Field(name string) string {
	if msgs := e.Fields[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}

	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case payload.Detail != "":
			apiErr.Message = payload.Detail
		case payload.Message != "":
			apiErr.Message = payload.Message
		}
	}

	// DRF validation failures come back as {"field": ["msg", ...]}.
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		apiErr.Fields = fields
	}

	return apiErr
}

// MessageOr extracts the server's verbatim error string, falling back to the
// given generic message when the failure carries none.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}
