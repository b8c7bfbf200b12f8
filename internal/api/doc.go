// Package api is the HTTP transport for the inference service. It resolves
// URLs, attaches authentication headers, encodes JSON and multipart bodies,
// and normalizes every response into one of two outcomes.
//
// # Normalization
//
// Each call returns either an [Object] and a nil error, or a nil Object and
// one of:
//
//   - [*APIError]: the service answered with a status other than 200. Body
//     holds the decoded payload unchanged.
//   - [*NetworkError]: no response was received (connection refused, DNS,
//     timeout).
//   - [*DecodeError]: the body was not JSON, or a 200 body was not a JSON
//     object.
//
// Status codes are not otherwise distinguished. Callers inspect the
// APIError body, or use errors.Is with [ErrUnauthorized], [ErrNotFound], or
// [ErrRateLimited].
//
// # Configuration
//
// The client reads its [config.Provider] on every request, so key, base URL,
// and transport options can change between calls. Per-call
// [config.HTTPOptions] are merged over the provider's options.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
