package image

import (
	"context"

	"github.com/i4ali/flygen/internal/flyer"
)

// Request describes one generation job as handed to a backend. Prompt text is
// assembled upstream; backends never re-derive it.
type Request struct {
	Prompt          string            `json:"prompt"`
	NegativePrompt  string            `json:"negative_prompt,omitempty"`
	Model           string            `json:"model"`
	AspectRatio     flyer.AspectRatio `json:"aspect_ratio"`
	Quality         string            `json:"quality,omitempty"`
	Count           int               `json:"count,omitempty"`
	InputImagePaths []string          `json:"input_image_paths,omitempty"`
}

// Result reports the outcome of a single image attempt. A batch of N requested
// images always yields N results; failures are carried as Success=false with
// ErrorMessage set rather than aborting the batch.
type Result struct {
	Success               bool           `json:"success"`
	ImagePath             string         `json:"image_path,omitempty"`
	ImageURL              string         `json:"image_url,omitempty"`
	ImageBase64           string         `json:"image_base64,omitempty"`
	RevisedPrompt         string         `json:"revised_prompt,omitempty"`
	ErrorMessage          string         `json:"error_message,omitempty"`
	ModelUsed             string         `json:"model_used"`
	GenerationTimeSeconds float64        `json:"generation_time_seconds"`
	Metadata              map[string]any `json:"metadata,omitempty"`
}

// Generator is the contract implemented by the dispatcher and the mock.
// Generate never fails as a whole: a request for N images yields exactly N
// results, and anything that goes wrong is reported inside a Result.
type Generator interface {
	Generate(ctx context.Context, req Request) []Result
}
