package utils

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusError is returned when the server answers with a status code
// outside of 2XX. Body keeps the raw response for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func NewStatusError(code int, body []byte) *StatusError {
	return &StatusError{
		StatusCode: code,
		Body:       body,
		Message:    parseErrorMessage(body),
	}
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d, response body %s", e.StatusCode, e.Body)
}

// TransportError means no complete response was received: connection
// refused, DNS failure, timeout or a broken body.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// grist answers {"error": "..."}, airtable {"error": {"type": "...", "message": "..."}}
// or {"error": "NOT_FOUND"}
func parseErrorMessage(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &payload) != nil || len(payload.Error) == 0 {
		return ""
	}

	var msg string
	if json.Unmarshal(payload.Error, &msg) == nil {
		return msg
	}

	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if json.Unmarshal(payload.Error, &detail) != nil {
		return ""
	}
	if detail.Message == "" {
		return detail.Type
	}
	if detail.Type == "" {
		return detail.Message
	}
	return fmt.Sprintf("%s: %s", detail.Type, detail.Message)
}
