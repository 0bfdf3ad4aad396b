package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/i4ali/flygen/internal/storage"
)

// ErrMissingAPIKey indicates that the dispatcher was configured without
// credentials.
var ErrMissingAPIKey = errors.New("image: api key is required")

const defaultRequestTimeout = 120 * time.Second

// Options configures the Dispatcher. Every knob is explicit; nothing is read
// from the environment here.
type Options struct {
	APIKey string
	// BaseURL overrides the API root. Empty selects the default for the
	// chosen routing mode.
	BaseURL string
	// UseOpenRouter routes every model through OpenRouter under its proxy
	// identifier instead of calling the OpenAI API directly.
	UseOpenRouter bool
	// Store receives generated image bytes. Nil disables saving.
	Store *storage.FileStore
	// Timeout bounds each individual backend call.
	Timeout time.Duration
	// Parallel fans a multi-image batch out concurrently. Results keep
	// request order either way.
	Parallel   bool
	Logger     *zerolog.Logger
	HTTPClient *http.Client
}

// Dispatcher routes generation requests to the protocol family of the
// requested model and normalizes every outcome into Results.
type Dispatcher struct {
	useOpenRouter bool
	store         *storage.FileStore
	timeout       time.Duration
	parallel      bool
	logger        zerolog.Logger
	httpClient    *http.Client
	images        *imageClient
	chat          *chatClient
}

// NewDispatcher constructs a Dispatcher with validated options.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		if opts.UseOpenRouter {
			baseURL = "https://openrouter.ai/api/v1"
		} else {
			baseURL = "https://api.openai.com/v1"
		}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Dispatcher{
		useOpenRouter: opts.UseOpenRouter,
		store:         opts.Store,
		timeout:       timeout,
		parallel:      opts.Parallel,
		logger:        logger,
		httpClient:    httpClient,
		images:        &imageClient{apiKey: apiKey, baseURL: baseURL, httpClient: httpClient},
		chat:          &chatClient{apiKey: apiKey, baseURL: baseURL, httpClient: httpClient},
	}, nil
}

// Provider names the upstream this dispatcher talks to.
func (d *Dispatcher) Provider() string {
	if d.useOpenRouter {
		return "openrouter"
	}
	return "openai"
}

// Generate produces req.Count images (at least one). It never fails as a
// whole: individual call errors become failed Results and the batch carries
// on, so callers can count successes instead of unwinding.
func (d *Dispatcher) Generate(ctx context.Context, req Request) []Result {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	backend, err := LookupBackend(req.Model)
	if err != nil {
		return failedBatch(count, req.Model, err)
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return failedBatch(count, req.Model, errors.New("image: prompt is required"))
	}
	// Reported length covers the main prompt only, not the AVOID suffix.
	promptLength := len(prompt)
	if neg := strings.TrimSpace(req.NegativePrompt); neg != "" {
		prompt = prompt + "\n\nAVOID: " + neg
	}

	inputImages := req.InputImagePaths
	if len(inputImages) > 0 && !backend.AcceptsInputImages {
		d.logger.Warn().
			Str("model", req.Model).
			Int("input_images", len(inputImages)).
			Msg("model does not accept input images, dropping them")
		inputImages = nil
	}

	model := req.Model
	if d.useOpenRouter {
		model = backend.ProxyModel
	}

	d.logger.Info().
		Str("model", req.Model).
		Str("provider", d.Provider()).
		Str("aspect_ratio", string(req.AspectRatio)).
		Int("count", count).
		Msg("dispatching generation")

	start := time.Now()
	results := make([]Result, count)
	if d.parallel && count > 1 {
		var g errgroup.Group
		for i := 0; i < count; i++ {
			i := i
			g.Go(func() error {
				results[i] = d.generateOne(ctx, backend, model, prompt, req, inputImages, i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < count; i++ {
			results[i] = d.generateOne(ctx, backend, model, prompt, req, inputImages, i)
		}
	}

	// The per-image figure is the batch time split evenly; callers only use
	// it for coarse reporting.
	perImage := time.Since(start).Seconds() / float64(count)
	for i := range results {
		results[i].GenerationTimeSeconds = perImage
		if results[i].Metadata == nil {
			results[i].Metadata = map[string]any{}
		}
		results[i].Metadata["prompt_length"] = promptLength
		results[i].Metadata["aspect_ratio"] = string(req.AspectRatio)
		results[i].Metadata["provider"] = d.Provider()
	}
	return results
}

func (d *Dispatcher) generateOne(ctx context.Context, backend Backend, model, prompt string, req Request, inputImages []string, index int) Result {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		out *generated
		err error
	)
	switch backend.Protocol {
	case ProtocolChat:
		out, err = d.chat.generate(callCtx, model, prompt, req, inputImages)
	default:
		out, err = d.images.generate(callCtx, model, prompt, req)
	}
	if err != nil {
		d.logger.Error().Err(err).Str("model", req.Model).Int("index", index).Msg("generation call failed")
		return Result{Success: false, ErrorMessage: err.Error(), ModelUsed: req.Model}
	}

	result := Result{
		Success:       true,
		ImageURL:      out.URL,
		ImageBase64:   out.Base64,
		RevisedPrompt: out.RevisedPrompt,
		ModelUsed:     req.Model,
	}
	if d.store == nil {
		return result
	}
	data, err := d.imageBytes(callCtx, out)
	if err != nil {
		d.logger.Warn().Err(err).Str("model", req.Model).Msg("could not obtain image bytes for saving")
		return result
	}
	path, err := d.store.WriteTimestamped(callCtx, backend.FilePrefix, index, "png", data)
	if err != nil {
		d.logger.Warn().Err(err).Str("model", req.Model).Msg("could not save image")
		return result
	}
	result.ImagePath = path
	return result
}

// imageBytes materializes the generated image, decoding inline base64 or
// downloading the hosted URL.
func (d *Dispatcher) imageBytes(ctx context.Context, out *generated) ([]byte, error) {
	if out.Base64 != "" {
		data, err := base64.StdEncoding.DecodeString(out.Base64)
		if err != nil {
			return nil, fmt.Errorf("image: decode base64 payload: %w", err)
		}
		return data, nil
	}
	if out.URL == "" {
		return nil, errors.New("image: result carries no image payload")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, out.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("image: build download request: %w", err)
	}
	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image: download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image: download status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image: read image body: %w", err)
	}
	return data, nil
}

func failedBatch(count int, model string, err error) []Result {
	results := make([]Result, count)
	for i := range results {
		results[i] = Result{Success: false, ErrorMessage: err.Error(), ModelUsed: model}
	}
	return results
}

var _ Generator = (*Dispatcher)(nil)
