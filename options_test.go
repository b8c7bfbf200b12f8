package gptkit

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestWithConfig(t *testing.T) {
	cfg := &clientConfig{}
	WithConfig(Config{Key: "sk-test"})(cfg)
	if cfg.provider == nil {
		t.Fatal("provider was not set")
	}
	if got := cfg.provider.APIKey(); got != "sk-test" {
		t.Errorf("APIKey() = %s, want sk-test", got)
	}
}

func TestWithProvider(t *testing.T) {
	cfg := &clientConfig{}
	WithProvider(&Config{Key: "sk-provider"})(cfg)
	if cfg.provider == nil || cfg.provider.APIKey() != "sk-provider" {
		t.Error("provider was not set")
	}
}

func TestWithConfigFile(t *testing.T) {
	cfg := &clientConfig{}
	WithConfigFile("gptkit.yaml")(cfg)
	if cfg.configFile != "gptkit.yaml" {
		t.Errorf("configFile = %s, want gptkit.yaml", cfg.configFile)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{logger: zerolog.Nop()}
	WithLogger(zerolog.New(nil).Level(zerolog.DebugLevel))(cfg)
	if cfg.logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("logger level = %s, want debug", cfg.logger.GetLevel())
	}
}

func TestWithMetrics(t *testing.T) {
	cfg := &clientConfig{}
	reg := prometheus.NewRegistry()
	WithMetrics(reg)(cfg)
	if cfg.registerer != reg {
		t.Error("registerer was not set")
	}
}

func TestCallOptions(t *testing.T) {
	got := callOptions([]CallOption{
		WithCallTimeout(5 * time.Second),
		WithCallHeader("X-Trace", "abc"),
		WithCallHeader("X-Team", "ml"),
	})

	if got.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", got.Timeout)
	}
	if got.Headers["X-Trace"] != "abc" || got.Headers["X-Team"] != "ml" {
		t.Errorf("Headers = %v, want X-Trace and X-Team", got.Headers)
	}
}

func TestCallOptions_Empty(t *testing.T) {
	got := callOptions(nil)
	if got.Timeout != 0 || got.UserAgent != "" || got.Headers != nil {
		t.Errorf("callOptions(nil) = %+v, want zero value", got)
	}
}
