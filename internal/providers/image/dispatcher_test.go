package image

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/i4ali/flygen/internal/flyer"
	"github.com/i4ali/flygen/internal/storage"
)

func newTestDispatcher(t *testing.T, server *httptest.Server, mutate func(*Options)) *Dispatcher {
	t.Helper()
	opts := Options{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}
	if mutate != nil {
		mutate(&opts)
	}
	d, err := NewDispatcher(opts)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	return d
}

func TestDispatcherRequiresAPIKey(t *testing.T) {
	if _, err := NewDispatcher(Options{}); err != ErrMissingAPIKey {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestDispatcherImageProtocol(t *testing.T) {
	var captured imageGenRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://cdn.example.com/img.png", "revised_prompt": "revised"}},
		})
	}))
	defer server.Close()

	d := newTestDispatcher(t, server, nil)
	results := d.Generate(context.Background(), Request{
		Prompt:         "a flyer",
		NegativePrompt: "blurry text",
		Model:          "dall-e-3",
		AspectRatio:    flyer.RatioLandscape,
		Quality:        "hd",
	})
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	res := results[0]
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.ErrorMessage)
	}
	if res.ImageURL != "https://cdn.example.com/img.png" || res.RevisedPrompt != "revised" {
		t.Fatalf("unexpected result: %#v", res)
	}
	if res.ModelUsed != "dall-e-3" {
		t.Fatalf("model used = %q", res.ModelUsed)
	}
	if captured.Model != "dall-e-3" || captured.Size != "1792x1024" {
		t.Fatalf("request model/size = %q/%q", captured.Model, captured.Size)
	}
	if captured.Quality != "hd" || captured.Style != "vivid" {
		t.Fatalf("dall-e-3 quality/style = %q/%q", captured.Quality, captured.Style)
	}
	if !strings.HasSuffix(captured.Prompt, "\n\nAVOID: blurry text") {
		t.Fatalf("negative prompt not concatenated: %q", captured.Prompt)
	}
	if res.Metadata["provider"] != "openai" {
		t.Fatalf("metadata provider = %v", res.Metadata["provider"])
	}
	if res.Metadata["aspect_ratio"] != "16:9" {
		t.Fatalf("metadata aspect_ratio = %v", res.Metadata["aspect_ratio"])
	}
	// The AVOID suffix travels to the backend but is not counted.
	if res.Metadata["prompt_length"] != len("a flyer") {
		t.Fatalf("metadata prompt_length = %v, want %d", res.Metadata["prompt_length"], len("a flyer"))
	}
}

func TestDispatcherChatProtocolThroughOpenRouter(t *testing.T) {
	var captured chatGenRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"content": "a description",
					"images": []map[string]any{{
						"image_url": map[string]any{"url": "data:image/png;base64,aGVsbG8="},
					}},
				},
			}},
		})
	}))
	defer server.Close()

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	d := newTestDispatcher(t, server, func(o *Options) {
		o.UseOpenRouter = true
		o.Store = store
	})
	results := d.Generate(context.Background(), Request{
		Prompt:      "a flyer",
		Model:       "nano-banana",
		AspectRatio: flyer.RatioPortrait,
	})
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("unexpected results: %#v", results)
	}
	if captured.Model != "google/gemini-2.5-flash-image-preview" {
		t.Fatalf("proxied model = %q", captured.Model)
	}
	if captured.ImageConfig == nil || captured.ImageConfig.AspectRatio != "3:4" {
		t.Fatalf("image config = %#v", captured.ImageConfig)
	}
	if len(captured.Modalities) != 2 || captured.Modalities[0] != "image" {
		t.Fatalf("modalities = %v", captured.Modalities)
	}
	if results[0].ImageBase64 != "aGVsbG8=" {
		t.Fatalf("image base64 = %q", results[0].ImageBase64)
	}
	if results[0].RevisedPrompt != "a description" {
		t.Fatalf("revised prompt = %q", results[0].RevisedPrompt)
	}
	if results[0].Metadata["provider"] != "openrouter" {
		t.Fatalf("metadata provider = %v", results[0].Metadata["provider"])
	}
	name := filepath.Base(results[0].ImagePath)
	if !strings.HasPrefix(name, "nanobanana_") || !strings.HasSuffix(name, "_0.png") {
		t.Fatalf("saved file name = %q", name)
	}
}

func TestDispatcherBatchContinuesPastFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 2 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://cdn.example.com/img.png"}},
		})
	}))
	defer server.Close()

	d := newTestDispatcher(t, server, nil)
	results := d.Generate(context.Background(), Request{
		Prompt:      "a flyer",
		Model:       "gpt-image-1",
		AspectRatio: flyer.RatioSquare,
		Count:       3,
	})
	if len(results) != 3 {
		t.Fatalf("result count = %d, want 3", len(results))
	}
	var failed int
	for _, res := range results {
		if !res.Success {
			failed++
			if !strings.Contains(res.ErrorMessage, "upstream exploded") {
				t.Fatalf("error message = %q", res.ErrorMessage)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("failed count = %d, want 1", failed)
	}
}

func TestDispatcherUnknownModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no backend call expected for unknown model")
	}))
	defer server.Close()

	d := newTestDispatcher(t, server, nil)
	results := d.Generate(context.Background(), Request{
		Prompt: "a flyer",
		Model:  "imaginary-model",
		Count:  2,
	})
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	for _, res := range results {
		if res.Success || !strings.Contains(res.ErrorMessage, "unknown model") {
			t.Fatalf("unexpected result: %#v", res)
		}
	}
}

func TestDispatcherDropsInputImagesForImageProtocol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://cdn.example.com/img.png"}},
		})
	}))
	defer server.Close()

	d := newTestDispatcher(t, server, nil)
	// The path does not exist; if the images were not dropped the chat
	// encoder would fail reading it.
	results := d.Generate(context.Background(), Request{
		Prompt:          "a flyer",
		Model:           "dall-e-3",
		AspectRatio:     flyer.RatioSquare,
		InputImagePaths: []string{"/does/not/exist.png"},
	})
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestDispatcherParallelKeepsRequestOrder(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://cdn.example.com/img.png", "revised_prompt": "r"}},
		})
	}))
	defer server.Close()

	d := newTestDispatcher(t, server, func(o *Options) { o.Parallel = true })
	results := d.Generate(context.Background(), Request{
		Prompt:      "a flyer",
		Model:       "gpt-image-1",
		AspectRatio: flyer.RatioSquare,
		Count:       4,
	})
	if len(results) != 4 {
		t.Fatalf("result count = %d, want 4", len(results))
	}
	if calls.Load() != 4 {
		t.Fatalf("backend calls = %d, want 4", calls.Load())
	}
	for i, res := range results {
		if !res.Success {
			t.Fatalf("result %d failed: %s", i, res.ErrorMessage)
		}
	}
}

func TestGptImageQualityMapping(t *testing.T) {
	cases := map[string]string{
		"low":      "low",
		"medium":   "medium",
		"high":     "high",
		"hd":       "high",
		"standard": "high",
		"":         "high",
	}
	for in, want := range cases {
		if got := gptImageQuality(in); got != want {
			t.Fatalf("gptImageQuality(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDalleQualityMapping(t *testing.T) {
	cases := map[string]string{
		"hd":       "hd",
		"HD":       "hd",
		"high":     "hd",
		"standard": "standard",
		"low":      "standard",
		"":         "standard",
	}
	for in, want := range cases {
		if got := dalleQuality(in); got != want {
			t.Fatalf("dalleQuality(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBase64FromDataURL(t *testing.T) {
	got, err := base64FromDataURL("data:image/png;base64,Zm9v")
	if err != nil || got != "Zm9v" {
		t.Fatalf("got %q, err %v", got, err)
	}
	got, err = base64FromDataURL("Zm9v")
	if err != nil || got != "Zm9v" {
		t.Fatalf("plain base64 should pass through, got %q, err %v", got, err)
	}
	if _, err := base64FromDataURL("data:image/png;base64,"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
