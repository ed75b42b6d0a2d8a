// Package errors defines the single failure type returned by the SDK's
// API operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is wrapped by the RequestError returned when the
// product envelope reports success=false.
var ErrProductNotFound = errors.New("product not found")

// RequestError describes a failed API call: a non-2xx response, a network
// failure, or a response body that could not be parsed.
type RequestError struct {
	Operation  string // human readable, e.g. "fetch addresses"
	Method     string
	Path       string
	StatusCode int    // 0 when no response was received
	Status     string // HTTP status text, e.g. "Not Found"
	Message    string // backend message when present, otherwise Status
	Body       string // raw response body for debugging
	Err        error  // network, decode or sentinel error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("failed to %s: HTTP %d", e.Operation, e.StatusCode)
	default:
		return fmt.Sprintf("failed to %s", e.Operation)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// AsRequestError extracts a *RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsStatus reports whether err is a RequestError carrying the given HTTP status.
func IsStatus(err error, code int) bool {
	re, ok := AsRequestError(err)
	return ok && re.StatusCode == code
}
