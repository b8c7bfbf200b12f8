package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gptkit/client-go/internal/config"
	"github.com/gptkit/client-go/internal/metrics"
)

// Version is reported in the default User-Agent.
const Version = "0.4.0"

const defaultUserAgent = "gptkit-go/" + Version

// RequestIDHeader carries a client-generated ID for log correlation.
const RequestIDHeader = "X-Client-Request-Id"

// Client is the HTTP transport shared by every endpoint.
type Client struct {
	provider   config.Provider
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *metrics.Collector
}

// Option configures the API client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a new API client. The provider is consulted on every request.
func New(provider config.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("config provider is required")
	}

	c := &Client{
		provider:   provider,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Request describes a single exchange.
type Request struct {
	Method    string
	Path      string
	Body      []byte
	Headers   []Header
	Options   config.HTTPOptions
	RequestID string
}

// RawResponse is an undecoded HTTP response.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// ResolveURL joins the configured base URL and path. The path is not escaped
// and must start with "/".
func (c *Client) ResolveURL(path string) string {
	return c.provider.APIURL() + path
}

// Get performs a GET request and normalizes the response.
func (c *Client) Get(ctx context.Context, path string, override config.HTTPOptions) (Object, error) {
	req, err := c.newRequest(http.MethodGet, path, nil, BuildHeaders(c.provider), override)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, req)
}

// PostJSON encodes params as JSON, POSTs it, and normalizes the response.
func (c *Client) PostJSON(ctx context.Context, path string, params any, override config.HTTPOptions) (Object, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	req, err := c.newRequest(http.MethodPost, path, body, BuildHeaders(c.provider), override)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, req)
}

// PostMultipart uploads filePath under the "image" field together with any
// extra form fields, and normalizes the response.
func (c *Client) PostMultipart(ctx context.Context, path, filePath string, fields map[string]string, override config.HTTPOptions) (Object, error) {
	body, contentType, err := EncodeMultipart(BuildMultipart(filePath, fields))
	if err != nil {
		return nil, err
	}
	headers := append(BuildMultipartHeaders(c.provider), Header{Name: "Content-Type", Value: contentType})
	req, err := c.newRequest(http.MethodPost, path, body, headers, override)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, req)
}

// GetRaw performs a GET request for a non-JSON resource. A 200 response
// returns the body text as-is; anything else is normalized as usual.
func (c *Client) GetRaw(ctx context.Context, path string, override config.HTTPOptions) (string, error) {
	req, err := c.newRequest(http.MethodGet, path, nil, BuildHeaders(c.provider), override)
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := c.exchange(ctx, req)
	if err == nil && raw.StatusCode == http.StatusOK {
		c.observe(req, raw, nil, time.Since(start))
		return string(raw.Body), nil
	}
	_, err = Normalize(raw, err)
	c.observe(req, raw, err, time.Since(start))
	return "", err
}

func (c *Client) newRequest(method, path string, body []byte, headers []Header, override config.HTTPOptions) (*Request, error) {
	opts, err := c.provider.HTTPOptions().Merge(override)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method:    method,
		Path:      path,
		Body:      body,
		Headers:   headers,
		Options:   opts,
		RequestID: uuid.NewString(),
	}, nil
}

func (c *Client) call(ctx context.Context, req *Request) (Object, error) {
	start := time.Now()
	raw, err := c.exchange(ctx, req)
	obj, err := Normalize(raw, err)
	c.observe(req, raw, err, time.Since(start))
	return obj, err
}

// exchange sends req and reads the full response body. Any failure before a
// complete response is read is returned as a *NetworkError.
func (c *Client) exchange(ctx context.Context, req *Request) (*RawResponse, error) {
	url := c.ResolveURL(req.Path)

	if req.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Options.Timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return nil, &NetworkError{Op: req.Method, URL: url, Err: err}
	}

	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}
	for name, value := range req.Options.Headers {
		httpReq.Header.Set(name, value)
	}
	userAgent := req.Options.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set(RequestIDHeader, req.RequestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Op: req.Method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: req.Method, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	return &RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *Client) observe(req *Request, raw *RawResponse, err error, elapsed time.Duration) {
	outcome := Outcome(err)
	c.metrics.Observe(req.Method, outcome, elapsed)

	evt := c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("request_id", req.RequestID).
		Str("outcome", outcome).
		Dur("elapsed", elapsed)
	if raw != nil {
		evt = evt.Int("status", raw.StatusCode)
	}
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg("api request")
}

// Outcome classifies a call result for metrics and logs.
func Outcome(err error) string {
	var (
		apiErr    *APIError
		netErr    *NetworkError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &apiErr):
		return metrics.OutcomeAPIError
	case errors.As(err, &netErr):
		return metrics.OutcomeNetworkError
	case errors.As(err, &decodeErr):
		return metrics.OutcomeDecodeError
	}
	return metrics.OutcomeNetworkError
}
