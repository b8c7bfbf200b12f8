package gptkit

import "github.com/gptkit/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is matched by a 401 *APIError.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is matched by a 404 *APIError.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is matched by a 429 *APIError.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrNotObject is wrapped by a *DecodeError when a 200 body is not a JSON object.
	ErrNotObject = apierrors.ErrNotObject

	// ErrNoResultFiles is returned by FineTuningResults when the fine-tune has
	// not produced any result files.
	ErrNoResultFiles = apierrors.ErrNoResultFiles

	// ErrMissingField is returned when a multi-step call finds a required
	// field absent.
	ErrMissingField = apierrors.ErrMissingField
)

// APIError is a response with a status other than 200. Body is the decoded
// payload exactly as the service sent it.
type APIError = apierrors.APIError

// NetworkError is a transport failure; no response was received.
type NetworkError = apierrors.NetworkError

// DecodeError is a response whose body could not be decoded.
type DecodeError = apierrors.DecodeError

// FieldError is a missing field in a multi-step call.
type FieldError = apierrors.FieldError
