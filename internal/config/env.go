package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variables read by EnvProvider.
const (
	EnvAPIKey       = "OPENAI_API_KEY"
	EnvOrganization = "OPENAI_ORGANIZATION_KEY"
	EnvAPIURL       = "OPENAI_API_URL"
	EnvHTTPTimeout  = "OPENAI_HTTP_TIMEOUT"
	EnvUserAgent    = "OPENAI_USER_AGENT"
)

const (
	keyAPIKey       = "api_key"
	keyOrganization = "organization_key"
	keyAPIURL       = "api_url"
	keyTimeout      = "http_options.timeout"
	keyUserAgent    = "http_options.user_agent"
	keyHeaders      = "http_options.headers"
)

// EnvProvider reads configuration from the process environment, falling back
// to an optional config file and then to built-in defaults. Lookups are not
// cached: each call re-reads the environment.
type EnvProvider struct {
	v *viper.Viper
}

var _ Provider = (*EnvProvider)(nil)

// EnvOption configures an EnvProvider.
type EnvOption func(*envConfig)

type envConfig struct {
	configFile string
}

// WithConfigFile sets a yaml, json, or toml file supplying defaults.
func WithConfigFile(path string) EnvOption {
	return func(c *envConfig) {
		c.configFile = path
	}
}

// NewEnvProvider creates an EnvProvider.
func NewEnvProvider(opts ...EnvOption) (*EnvProvider, error) {
	cfg := &envConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := viper.New()
	v.SetDefault(keyAPIURL, DefaultAPIURL)

	bindings := map[string]string{
		keyAPIKey:       EnvAPIKey,
		keyOrganization: EnvOrganization,
		keyAPIURL:       EnvAPIURL,
		keyTimeout:      EnvHTTPTimeout,
		keyUserAgent:    EnvUserAgent,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err) //coverage:ignore
		}
	}

	if cfg.configFile != "" {
		v.SetConfigFile(cfg.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfg.configFile, err)
		}
	}

	return &EnvProvider{v: v}, nil
}

// APIKey returns the bearer token.
func (p *EnvProvider) APIKey() string {
	return strings.TrimSpace(p.v.GetString(keyAPIKey))
}

// Organization returns the organization key, or "" when unset.
func (p *EnvProvider) Organization() string {
	return strings.TrimSpace(p.v.GetString(keyOrganization))
}

// APIURL returns the base URL.
func (p *EnvProvider) APIURL() string {
	if u := strings.TrimSpace(p.v.GetString(keyAPIURL)); u != "" {
		return u
	}
	return DefaultAPIURL
}

// HTTPOptions returns the transport options.
func (p *EnvProvider) HTTPOptions() HTTPOptions {
	return HTTPOptions{
		Timeout:   p.v.GetDuration(keyTimeout),
		UserAgent: p.v.GetString(keyUserAgent),
		Headers:   p.v.GetStringMapString(keyHeaders),
	}
}

// LoadDotEnv loads variables from the given .env files, or from ./.env when
// none are given. Variables already present in the environment are kept.
// A missing ./.env is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}
