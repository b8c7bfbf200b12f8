// Package apierrors provides shared error types for the gptkit client.
package apierrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is matched by a 401 APIError.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrNotFound is matched by a 404 APIError.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is matched by a 429 APIError.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNotObject is wrapped by a DecodeError when a successful body is valid
	// JSON but not an object.
	ErrNotObject = errors.New("response body is not a JSON object")

	// ErrNoResultFiles is returned when a fine-tune has no result files yet.
	ErrNoResultFiles = errors.New("fine-tune has no result files")

	// ErrMissingField is returned when a required field is absent from a payload.
	ErrMissingField = errors.New("missing field")
)

// APIError is a non-200 response from the service. Body holds the decoded
// payload exactly as the service returned it.
type APIError struct {
	StatusCode int
	Body       any
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Message returns error.message from the body, or "" when absent.
func (e *APIError) Message() string {
	return e.errorField("message")
}

// Type returns error.type from the body, or "" when absent.
func (e *APIError) Type() string {
	return e.errorField("type")
}

func (e *APIError) errorField(name string) string {
	body, ok := e.Body.(map[string]any)
	if !ok {
		return ""
	}
	detail, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := detail[name].(string)
	return s
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", e.Reason())
}

// Reason describes the underlying failure. It is never empty.
func (e *NetworkError) Reason() string {
	if e.Err != nil {
		if r := strings.TrimSpace(e.Err.Error()); r != "" {
			return r
		}
	}
	if e.Op != "" {
		return e.Op + " " + e.URL + " failed"
	}
	return "transport failure"
}

// Timeout reports whether the failure was a timeout.
func (e *NetworkError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body cannot be decoded.
type DecodeError struct {
	StatusCode int
	Raw        []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FieldError reports a field that a multi-step call needed but did not find.
type FieldError struct {
	Resource string
	Field    string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Resource, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
