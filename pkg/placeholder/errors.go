package placeholder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ResponseError represents a non-2xx response from the API. The API sends
// no structured error body (a 404 is an empty JSON object), so the error is
// built from the response line and the request that provoked it.
type ResponseError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Status     string `json:"status"      yaml:"status"`
	Method     string `json:"method"      yaml:"method"`
	Endpoint   string `json:"endpoint"    yaml:"endpoint"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Status)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
	ErrEmptyUpdate         = errors.New("update requires at least one field")
	ErrInvalidPostID       = errors.New("post id must be a positive integer")
)

// IsNotFound checks if the error is a not found response.
func IsNotFound(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsTimeout checks if the error was caused by the request timeout or a
// context deadline.
func IsTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
