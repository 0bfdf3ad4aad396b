package image

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/i4ali/flygen/internal/storage"
)

// Mock is a no-network backend for development and tests. It honors the full
// Generator contract and, when a store is configured, writes a text
// transcript of each request in place of an image.
type Mock struct {
	store  *storage.FileStore
	logger zerolog.Logger
}

// NewMock constructs a Mock backend. Store may be nil.
func NewMock(store *storage.FileStore, logger *zerolog.Logger) *Mock {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Mock{store: store, logger: l}
}

// Generate fulfils the Generator interface without calling any backend.
func (m *Mock) Generate(ctx context.Context, req Request) []Result {
	count := req.Count
	if count <= 0 {
		count = 1
	}
	prompt := strings.TrimSpace(req.Prompt)
	if neg := strings.TrimSpace(req.NegativePrompt); neg != "" {
		prompt = prompt + "\n\nAVOID: " + neg
	}

	start := time.Now()
	results := make([]Result, count)
	for i := range results {
		result := Result{Success: true, ModelUsed: "mock"}
		if m.store != nil {
			transcript := fmt.Sprintf(
				"MOCK GENERATION\nModel: %s\nAspect ratio: %s\nQuality: %s\n\nPROMPT:\n%s\n",
				req.Model, req.AspectRatio, req.Quality, prompt)
			path, err := m.store.WriteTimestamped(ctx, "mock", i, "txt", []byte(transcript))
			if err != nil {
				m.logger.Warn().Err(err).Msg("could not save mock transcript")
			} else {
				result.ImagePath = path
			}
		}
		results[i] = result
	}

	perImage := time.Since(start).Seconds() / float64(count)
	for i := range results {
		results[i].GenerationTimeSeconds = perImage
		results[i].Metadata = map[string]any{
			"prompt_length": len(prompt),
			"aspect_ratio":  string(req.AspectRatio),
			"provider":      "mock",
		}
	}
	return results
}

var _ Generator = (*Mock)(nil)
