package gptkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gptkit/client-go/internal/api"
	"github.com/gptkit/client-go/internal/config"
	"github.com/gptkit/client-go/internal/metrics"
)

// Client exposes the service's REST endpoints. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(cfg *clientConfig) (*api.Client, error) {
	provider := cfg.provider
	if provider == nil {
		var envOpts []config.EnvOption
		if cfg.configFile != "" {
			envOpts = append(envOpts, config.WithConfigFile(cfg.configFile))
		}
		env, err := config.NewEnvProvider(envOpts...)
		if err != nil {
			return nil, err
		}
		provider = env
	}

	apiOpts := []api.Option{
		api.WithHTTPClient(cfg.httpClient),
		api.WithLogger(cfg.logger),
	}
	if cfg.registerer != nil {
		collector, err := metrics.NewCollector(cfg.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		apiOpts = append(apiOpts, api.WithMetrics(collector))
	}

	return api.New(provider, apiOpts...)
}

// New creates a client. Without WithConfig or WithProvider, the API key,
// organization, and base URL are read from OPENAI_API_KEY,
// OPENAI_ORGANIZATION_KEY, and OPENAI_API_URL on every call. A missing key
// is not an error here; the service rejects the request with a 401.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// Answers answers a question using documents or an uploaded file.
func (c *Client) Answers(ctx context.Context, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.Answers(ctx, params, callOptions(opts))
}

// Engines lists the available engines.
func (c *Client) Engines(ctx context.Context, opts ...CallOption) (Object, error) {
	return c.apiClient.ListEngines(ctx, callOptions(opts))
}

// Engine retrieves a single engine.
func (c *Client) Engine(ctx context.Context, engineID string, opts ...CallOption) (Object, error) {
	return c.apiClient.GetEngine(ctx, engineID, callOptions(opts))
}

// Completions creates a completion with the given engine.
func (c *Client) Completions(ctx context.Context, engineID string, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.Completions(ctx, engineID, params, callOptions(opts))
}

// Search ranks documents against a query with the given engine.
func (c *Client) Search(ctx context.Context, engineID string, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.Search(ctx, engineID, params, callOptions(opts))
}

// Classifications classifies a query against labeled examples.
func (c *Client) Classifications(ctx context.Context, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.Classifications(ctx, params, callOptions(opts))
}

// FineTunes lists fine-tune jobs.
func (c *Client) FineTunes(ctx context.Context, opts ...CallOption) (Object, error) {
	return c.apiClient.ListFineTunes(ctx, callOptions(opts))
}

// FineTune retrieves a fine-tune job.
func (c *Client) FineTune(ctx context.Context, fineTuneID string, opts ...CallOption) (Object, error) {
	return c.apiClient.GetFineTune(ctx, fineTuneID, callOptions(opts))
}

// CreateFineTune starts a fine-tune job.
func (c *Client) CreateFineTune(ctx context.Context, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.CreateFineTune(ctx, params, callOptions(opts))
}

// Files lists uploaded files.
func (c *Client) Files(ctx context.Context, opts ...CallOption) (Object, error) {
	return c.apiClient.ListFiles(ctx, callOptions(opts))
}

// File retrieves a file's metadata.
func (c *Client) File(ctx context.Context, fileID string, opts ...CallOption) (Object, error) {
	return c.apiClient.GetFile(ctx, fileID, callOptions(opts))
}

// FileContent returns the last line of a file's content. A single trailing
// newline is ignored, so "a\nb\nc\n" yields "c".
func (c *Client) FileContent(ctx context.Context, fileID string, opts ...CallOption) (string, error) {
	content, err := c.apiClient.GetFileContent(ctx, fileID, callOptions(opts))
	if err != nil {
		return "", err
	}
	return lastLine(content), nil
}

// FineTuningResults fetches the first result file of a fine-tune and returns
// its content split on commas. It takes two round trips. A fine-tune without
// result files yields a *FieldError wrapping ErrNoResultFiles.
func (c *Client) FineTuningResults(ctx context.Context, fineTuneID string, opts ...CallOption) ([]string, error) {
	obj, err := c.FineTune(ctx, fineTuneID, opts...)
	if err != nil {
		return nil, err
	}

	var record FineTuneRecord
	if err := obj.Decode(&record); err != nil {
		return nil, fmt.Errorf("fine-tune %s: %w", fineTuneID, err)
	}

	resource := "fine-tune " + fineTuneID
	if len(record.ResultFiles) == 0 {
		return nil, &FieldError{Resource: resource, Field: "result_files", Err: ErrNoResultFiles}
	}
	fileID := record.ResultFiles[0].ID
	if fileID == "" {
		return nil, &FieldError{Resource: resource, Field: "result_files[0].id", Err: ErrMissingField}
	}

	content, err := c.apiClient.GetFileContent(ctx, fileID, callOptions(opts))
	if err != nil {
		return nil, err
	}
	return strings.Split(content, ","), nil
}

// ImageGenerations creates images from a prompt.
func (c *Client) ImageGenerations(ctx context.Context, params Params, opts ...CallOption) (Object, error) {
	return c.apiClient.ImageGenerations(ctx, params, callOptions(opts))
}

// ImageVariations uploads the image at filePath and requests variations of
// it. fields are sent as additional form fields.
func (c *Client) ImageVariations(ctx context.Context, filePath string, fields map[string]string, opts ...CallOption) (Object, error) {
	return c.apiClient.ImageVariations(ctx, filePath, fields, callOptions(opts))
}

func lastLine(content string) string {
	content = strings.TrimSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\r")
	lines := strings.Split(content, "\n")
	return lines[len(lines)-1]
}
