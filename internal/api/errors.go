package api

import "github.com/gptkit/client-go/internal/apierrors"

// Re-export error types from apierrors for use within the api package.
type (
	APIError     = apierrors.APIError
	NetworkError = apierrors.NetworkError
	DecodeError  = apierrors.DecodeError
)

// Re-export sentinel errors.
var (
	ErrUnauthorized = apierrors.ErrUnauthorized
	ErrNotFound     = apierrors.ErrNotFound
	ErrRateLimited  = apierrors.ErrRateLimited
	ErrNotObject    = apierrors.ErrNotObject
)
