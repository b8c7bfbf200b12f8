package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name: "with message",
			err: &APIError{StatusCode: 401, Body: map[string]any{
				"error": map[string]any{"message": "invalid key"},
			}},
			expected: "API error 401: invalid key",
		},
		{
			name:     "without message",
			err:      &APIError{StatusCode: 500, Body: map[string]any{}},
			expected: "API error 500",
		},
		{
			name:     "non-object body",
			err:      &APIError{StatusCode: 502, Body: []any{"bad gateway"}},
			expected: "API error 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Accessors(t *testing.T) {
	err := &APIError{StatusCode: 400, Body: map[string]any{
		"error": map[string]any{
			"message": "bad engine",
			"type":    "invalid_request_error",
		},
	}}
	assert.Equal(t, "bad engine", err.Message())
	assert.Equal(t, "invalid_request_error", err.Type())

	empty := &APIError{StatusCode: 400}
	assert.Empty(t, empty.Message())
	assert.Empty(t, empty.Type())
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		statusCode int
		target     error
		want       bool
	}{
		{401, ErrUnauthorized, true},
		{401, ErrNotFound, false},
		{404, ErrNotFound, true},
		{429, ErrRateLimited, true},
		{500, ErrRateLimited, false},
		{500, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%v", tt.statusCode, tt.target), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.statusCode})
			assert.Equal(t, tt.want, errors.Is(err, tt.target))
		})
	}
}

func TestNetworkError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Op: "GET", URL: "http://x/engines", Err: inner}

	assert.Equal(t, "network error: connection refused", err.Error())
	assert.Equal(t, "connection refused", err.Reason())
	assert.ErrorIs(t, err, inner)
	assert.False(t, err.Timeout())

	bare := &NetworkError{Op: "POST", URL: "http://x/answers"}
	assert.Equal(t, "POST http://x/answers failed", bare.Reason())
	assert.Equal(t, "transport failure", (&NetworkError{}).Reason())
}

func TestNetworkError_Timeout(t *testing.T) {
	err := &NetworkError{Err: timeoutErr{}}
	assert.True(t, err.Timeout())

	deadline := &NetworkError{Err: context.DeadlineExceeded}
	assert.True(t, deadline.Timeout())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestDecodeError(t *testing.T) {
	err := &DecodeError{StatusCode: 200, Raw: []byte("[]"), Err: ErrNotObject}
	assert.ErrorIs(t, err, ErrNotObject)
	assert.Contains(t, err.Error(), "status 200")
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Resource: "fine-tune ft-1", Field: "result_files", Err: ErrNoResultFiles}
	assert.ErrorIs(t, err, ErrNoResultFiles)
	assert.Equal(t, "fine-tune ft-1 result_files: fine-tune has no result files", err.Error())
}
