// Package config resolves the API key, organization, base URL, and HTTP
// options used by every request.
//
// A [Provider] is consulted on every call rather than once at construction,
// so values can change between calls without rebuilding the client.
package config

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"dario.cat/mergo"
)

// DefaultAPIURL is the production endpoint of the service.
const DefaultAPIURL = "https://api.openai.com/v1"

// Provider supplies request configuration at call time.
type Provider interface {
	APIKey() string
	Organization() string
	APIURL() string
	HTTPOptions() HTTPOptions
}

// HTTPOptions are transport-level options. Zero values mean "unset".
type HTTPOptions struct {
	Timeout   time.Duration     `mapstructure:"timeout"    yaml:"timeout"`
	UserAgent string            `mapstructure:"user_agent" yaml:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"    yaml:"headers"`
}

// Merge returns o overlaid with override. Set fields of override win and
// header maps are merged key by key. Neither input is modified.
func (o HTTPOptions) Merge(override HTTPOptions) (HTTPOptions, error) {
	merged := o
	merged.Headers = maps.Clone(o.Headers)
	src := override
	src.Headers = maps.Clone(override.Headers)
	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return HTTPOptions{}, fmt.Errorf("merge http options: %w", err)
	}
	return merged, nil
}

// Config is a fixed configuration. It satisfies Provider.
type Config struct {
	Key     string      `mapstructure:"api_key"`
	OrgKey  string      `mapstructure:"organization_key"`
	BaseURL string      `mapstructure:"api_url"`
	Options HTTPOptions `mapstructure:"http_options"`
}

var _ Provider = Config{}

// APIKey returns the bearer token.
func (c Config) APIKey() string { return c.Key }

// Organization returns the organization key, or "".
func (c Config) Organization() string { return strings.TrimSpace(c.OrgKey) }

// APIURL returns the base URL, falling back to DefaultAPIURL.
func (c Config) APIURL() string {
	if c.BaseURL == "" {
		return DefaultAPIURL
	}
	return c.BaseURL
}

// HTTPOptions returns the transport options.
func (c Config) HTTPOptions() HTTPOptions { return c.Options }
