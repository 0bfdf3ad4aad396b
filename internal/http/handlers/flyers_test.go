package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/i4ali/flygen/internal/providers/image"
)

type stubGenerator struct {
	results []image.Result
	calls   int
	lastReq image.Request
}

func (s *stubGenerator) Generate(ctx context.Context, req image.Request) []image.Result {
	s.calls++
	s.lastReq = req
	return s.results
}

func newTestApp(gen *stubGenerator) *App {
	return NewApp(gen, zerolog.Nop())
}

func TestGenerateFlyer(t *testing.T) {
	gen := &stubGenerator{results: []image.Result{{Success: true, ModelUsed: "nano-banana"}}}
	app := newTestApp(gen)

	body := `{
		"category": "sale_promo",
		"text_content": {"headline": "BIG SALE", "discount_text": "20% OFF"},
		"count": 1
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Prompt struct {
			MainPrompt     string `json:"main_prompt"`
			NegativePrompt string `json:"negative_prompt"`
			AspectRatio    string `json:"aspect_ratio"`
			Model          string `json:"model"`
		} `json:"prompt"`
		Results []image.Result `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Prompt.MainPrompt, "BIG SALE") {
		t.Fatalf("main prompt missing headline:\n%s", resp.Prompt.MainPrompt)
	}
	if resp.Prompt.AspectRatio != "4:5" || resp.Prompt.Model != "nano-banana" {
		t.Fatalf("defaults not applied: %+v", resp.Prompt)
	}
	if len(resp.Results) != 1 || !resp.Results[0].Success {
		t.Fatalf("results = %#v", resp.Results)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d", gen.calls)
	}
	if gen.lastReq.Prompt != resp.Prompt.MainPrompt {
		t.Fatalf("dispatched prompt differs from returned prompt")
	}
}

func TestGenerateFlyerForwardsInputImages(t *testing.T) {
	gen := &stubGenerator{}
	app := newTestApp(gen)

	body := `{
		"category": "event",
		"text_content": {"headline": "GALA"},
		"logo_path": "/assets/logo.png",
		"user_photo_path": "/assets/me.jpg"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(gen.lastReq.InputImagePaths) != 2 {
		t.Fatalf("input images = %v", gen.lastReq.InputImagePaths)
	}
}

func TestGenerateFlyerRejectsUnknownEnum(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	body := `{
		"category": "sale_promo",
		"text_content": {"headline": "X"},
		"visuals": {"mood": "mysterious"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateFlyer(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestGenerateFlyerRejectsBadJSON(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	app.GenerateFlyer(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefineFlyerKeywords(t *testing.T) {
	app := newTestApp(&stubGenerator{})

	body := `{"prior_prompt": "base", "feedback": "make it bigger and more readable"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/refine", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.RefineFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Prompt, "IMPORTANT MODIFICATIONS") {
		t.Fatalf("prompt = %q", resp.Prompt)
	}
}

func TestRefineFlyerRequiresFeedback(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/refine", strings.NewReader(`{"prior_prompt": "base"}`))
	rec := httptest.NewRecorder()
	app.RefineFlyer(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefineFlyerRegenerateWithEdit(t *testing.T) {
	gen := &stubGenerator{results: []image.Result{{Success: true}}}
	app := newTestApp(gen)

	body := `{
		"prior_prompt": "base",
		"feedback": "swap colors",
		"edit": true,
		"source_image_path": "/out/prev.png",
		"regenerate": true,
		"count": 1
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/refine", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.RefineFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d", gen.calls)
	}
	if !strings.Contains(gen.lastReq.Prompt, "EDIT MODE:") {
		t.Fatalf("dispatched prompt missing edit instructions: %q", gen.lastReq.Prompt)
	}
	if len(gen.lastReq.InputImagePaths) != 1 || gen.lastReq.InputImagePaths[0] != "/out/prev.png" {
		t.Fatalf("input images = %v", gen.lastReq.InputImagePaths)
	}
	if gen.lastReq.Model != "nano-banana" || string(gen.lastReq.AspectRatio) != "4:5" {
		t.Fatalf("defaults not applied: %+v", gen.lastReq)
	}
}

func TestRefineFlyerReformat(t *testing.T) {
	gen := &stubGenerator{results: []image.Result{{Success: true}}}
	app := newTestApp(gen)

	body := `{
		"reformat_to": "16:9",
		"source_image_path": "/out/prev.png",
		"regenerate": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/refine", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.RefineFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(gen.lastReq.Prompt, "16:9 aspect ratio") {
		t.Fatalf("reformat instruction missing: %q", gen.lastReq.Prompt)
	}
	if string(gen.lastReq.AspectRatio) != "16:9" {
		t.Fatalf("aspect ratio should follow the reformat target, got %q", gen.lastReq.AspectRatio)
	}
}

func TestRefineFlyerRejectsUnknownReformatRatio(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/refine", strings.NewReader(`{"reformat_to": "21:9"}`))
	rec := httptest.NewRecorder()
	app.RefineFlyer(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCategories(t *testing.T) {
	app := newTestApp(&stubGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/v1/flyers/categories", nil)
	rec := httptest.NewRecorder()
	app.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Categories []struct {
			ID          string   `json:"id"`
			DisplayName string   `json:"display_name"`
			TextFields  []string `json:"text_fields"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) != 12 {
		t.Fatalf("category count = %d, want 12", len(resp.Categories))
	}
	if resp.Categories[0].ID != "event" || len(resp.Categories[0].TextFields) == 0 {
		t.Fatalf("first category = %+v", resp.Categories[0])
	}
}
