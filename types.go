package gptkit

import "github.com/gptkit/client-go/internal/api"

// Object is a successful response. Top-level fields are keyed by Key; nested
// values keep their decoded JSON form. Use Object.Decode to fill a typed
// struct.
type Object = api.Object

// Key is a top-level response field name.
type Key = api.Key

// Params is a JSON request body.
type Params = map[string]any

// FineTuneRecord is the subset of a fine-tune job used by FineTuningResults.
type FineTuneRecord struct {
	ID             string       `json:"id"`
	Object         string       `json:"object"`
	Model          string       `json:"model"`
	Status         string       `json:"status"`
	FineTunedModel string       `json:"fine_tuned_model"`
	CreatedAt      int64        `json:"created_at"`
	UpdatedAt      int64        `json:"updated_at"`
	ResultFiles    []FileRecord `json:"result_files"`
	TrainingFiles  []FileRecord `json:"training_files"`
}

// FileRecord describes an uploaded or generated file.
type FileRecord struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Bytes     int64  `json:"bytes"`
	CreatedAt int64  `json:"created_at"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
}
