package placeholder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseError_Error(t *testing.T) {
	err := &ResponseError{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Method:     "GET",
		Endpoint:   "/posts/9999",
	}

	assert.Equal(t, "GET /posts/9999: 404 Not Found", err.Error())
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "not found response",
			err:      &ResponseError{StatusCode: http.StatusNotFound, Status: "404 Not Found"},
			expected: true,
		},
		{
			name:     "wrapped not found response",
			err:      fmt.Errorf("getting post: %w", &ResponseError{StatusCode: http.StatusNotFound}),
			expected: true,
		},
		{
			name:     "server error response",
			err:      &ResponseError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"},
			expected: false,
		},
		{
			name:     "other error type",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFound(tt.err))
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "net timeout",
			err:      timeoutError{},
			expected: true,
		},
		{
			name:     "wrapped net timeout",
			err:      fmt.Errorf("executing request: %w", timeoutError{}),
			expected: true,
		},
		{
			name:     "context deadline",
			err:      fmt.Errorf("executing request: %w", context.DeadlineExceeded),
			expected: true,
		},
		{
			name:     "not found response",
			err:      &ResponseError{StatusCode: http.StatusNotFound},
			expected: false,
		},
		{
			name:     "other error type",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTimeout(tt.err))
		})
	}
}
