package api

import (
	"context"

	"github.com/gptkit/client-go/internal/config"
)

// Endpoint paths. Identifiers are appended unescaped.
const (
	pathAnswers          = "/answers"
	pathEngines          = "/engines"
	pathClassifications  = "/classifications"
	pathFineTunes        = "/fine-tunes"
	pathFiles            = "/files"
	pathImageGenerations = "/images/generations"
	pathImageVariations  = "/images/variations"
)

// Answers answers a question using documents or an uploaded file.
func (c *Client) Answers(ctx context.Context, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathAnswers, params, opts)
}

// ListEngines lists the available engines.
func (c *Client) ListEngines(ctx context.Context, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathEngines, opts)
}

// GetEngine retrieves a single engine.
func (c *Client) GetEngine(ctx context.Context, engineID string, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathEngines+"/"+engineID, opts)
}

// Completions creates a completion with the given engine.
func (c *Client) Completions(ctx context.Context, engineID string, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathEngines+"/"+engineID+"/completions", params, opts)
}

// Search ranks documents against a query with the given engine.
func (c *Client) Search(ctx context.Context, engineID string, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathEngines+"/"+engineID+"/search", params, opts)
}

// Classifications classifies a query against labeled examples.
func (c *Client) Classifications(ctx context.Context, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathClassifications, params, opts)
}

// ListFineTunes lists fine-tune jobs.
func (c *Client) ListFineTunes(ctx context.Context, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathFineTunes, opts)
}

// GetFineTune retrieves a fine-tune job.
func (c *Client) GetFineTune(ctx context.Context, fineTuneID string, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathFineTunes+"/"+fineTuneID, opts)
}

// CreateFineTune starts a fine-tune job.
func (c *Client) CreateFineTune(ctx context.Context, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathFineTunes, params, opts)
}

// ListFiles lists uploaded files.
func (c *Client) ListFiles(ctx context.Context, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathFiles, opts)
}

// GetFile retrieves a file's metadata.
func (c *Client) GetFile(ctx context.Context, fileID string, opts config.HTTPOptions) (Object, error) {
	return c.Get(ctx, pathFiles+"/"+fileID, opts)
}

// GetFileContent returns a file's raw content.
func (c *Client) GetFileContent(ctx context.Context, fileID string, opts config.HTTPOptions) (string, error) {
	return c.GetRaw(ctx, pathFiles+"/"+fileID+"/content", opts)
}

// ImageGenerations creates images from a prompt.
func (c *Client) ImageGenerations(ctx context.Context, params map[string]any, opts config.HTTPOptions) (Object, error) {
	return c.PostJSON(ctx, pathImageGenerations, params, opts)
}

// ImageVariations uploads the image at filePath and requests variations.
func (c *Client) ImageVariations(ctx context.Context, filePath string, fields map[string]string, opts config.HTTPOptions) (Object, error) {
	return c.PostMultipart(ctx, pathImageVariations, filePath, fields, opts)
}
