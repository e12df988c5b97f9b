package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no API key was provided. Callers that
	// can degrade (the estimator) check for it with errors.Is.
	ErrNotConfigured = errors.New("gemini: api key not configured")

	// ErrEmptyResponse is returned when the API answered but produced no text.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// APIError is a non-2xx or error-bearing response from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
