package gptkit

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/gptkit/client-go/internal/config"
)

// HTTPOptions are transport options. Per-call options are merged over the
// client's options; set fields win and header maps merge key by key.
type HTTPOptions = config.HTTPOptions

// Config is a fixed client configuration.
type Config = config.Config

// Provider supplies configuration on every call.
type Provider = config.Provider

// clientConfig holds configuration for the client.
type clientConfig struct {
	provider   config.Provider
	configFile string
	httpClient *http.Client
	logger     zerolog.Logger
	registerer prometheus.Registerer
}

// Option configures the client.
type Option func(*clientConfig)

// CallOption adjusts a single request.
type CallOption func(*HTTPOptions)

// WithConfig uses a fixed configuration instead of the environment.
func WithConfig(cfg Config) Option {
	return func(c *clientConfig) {
		c.provider = cfg
	}
}

// WithProvider sets a custom configuration provider.
func WithProvider(p Provider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithConfigFile sets a yaml, json, or toml file whose values are used when
// the corresponding environment variables are unset. It has no effect
// together with WithConfig or WithProvider.
func WithConfigFile(path string) Option {
	return func(c *clientConfig) {
		c.configFile = path
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger enables debug logging of each request. The API key is never
// logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithCallTimeout bounds a single request.
func WithCallTimeout(d time.Duration) CallOption {
	return func(o *HTTPOptions) {
		o.Timeout = d
	}
}

// WithCallHeader adds a header to a single request.
func WithCallHeader(name, value string) CallOption {
	return func(o *HTTPOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[name] = value
	}
}

func callOptions(opts []CallOption) HTTPOptions {
	var o HTTPOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
