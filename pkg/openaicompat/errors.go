package openaicompat

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("openaicompat: API key is required")
	ErrMissingURL    = errors.New("openaicompat: base URL is required")
	ErrEmptyRequest  = errors.New("openaicompat: request has no messages")
	ErrNoChoices     = errors.New("openaicompat: response has no choices")
	ErrRateLimited   = errors.New("openaicompat: rate limited")
)

// APIError is a non-200 answer from the endpoint.
type APIError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Vendor, e.StatusCode, e.Message)
}

// Unwrap lets callers match 429 with errors.Is(err, ErrRateLimited).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return nil
}
