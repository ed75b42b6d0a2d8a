package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError builds the error for a non-2xx response. The message is the
// backend's JSON "message" field when it has one, otherwise the status text.
func NewHTTPError(operation, method, path string, statusCode int, body []byte) *RequestError {
	status := http.StatusText(statusCode)
	msg := backendMessage(body)
	if msg == "" {
		msg = status
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", statusCode)
	}
	return &RequestError{
		Operation:  operation,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Status:     status,
		Message:    msg,
		Body:       string(body),
	}
}

// NewNetworkError wraps a transport-level failure. No response was received.
func NewNetworkError(operation, method, path string, err error) *RequestError {
	return &RequestError{
		Operation: operation,
		Method:    method,
		Path:      path,
		Err:       err,
	}
}

// NewDecodeError wraps a failure to parse a 2xx response body.
func NewDecodeError(operation, method, path string, statusCode int, body []byte, err error) *RequestError {
	return &RequestError{
		Operation:  operation,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       string(body),
		Err:        err,
	}
}

func backendMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if len(body) == 0 || json.Unmarshal(body, &env) != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}
