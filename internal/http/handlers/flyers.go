package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/i4ali/flygen/internal/flyer"
	"github.com/i4ali/flygen/internal/prompt"
	"github.com/i4ali/flygen/internal/providers/image"
)

type generateRequest struct {
	flyer.Spec
	Count int `json:"count,omitempty"`
}

type generateResponse struct {
	Prompt  prompt.Package `json:"prompt"`
	Results []image.Result `json:"results"`
}

// GenerateFlyer assembles the prompt package for a flyer spec and dispatches
// image generation.
func (a *App) GenerateFlyer(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.Spec.ApplyDefaults()

	pkg, err := prompt.Assemble(req.Spec)
	if err != nil {
		a.error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var inputImages []string
	if p := strings.TrimSpace(req.Spec.LogoPath); p != "" {
		inputImages = append(inputImages, p)
	}
	if p := strings.TrimSpace(req.Spec.UserPhotoPath); p != "" {
		inputImages = append(inputImages, p)
	}

	results := a.Generator.Generate(r.Context(), image.Request{
		Prompt:          pkg.MainPrompt,
		NegativePrompt:  pkg.NegativePrompt,
		Model:           pkg.Model,
		AspectRatio:     pkg.AspectRatio,
		Quality:         pkg.Quality,
		Count:           req.Count,
		InputImagePaths: inputImages,
	})
	a.json(w, http.StatusOK, generateResponse{Prompt: pkg, Results: results})
}

type refineRequest struct {
	PriorPrompt     string            `json:"prior_prompt"`
	Feedback        string            `json:"feedback"`
	Edit            bool              `json:"edit,omitempty"`
	SourceImagePath string            `json:"source_image_path,omitempty"`
	ReformatTo      flyer.AspectRatio `json:"reformat_to,omitempty"`
	Regenerate      bool              `json:"regenerate,omitempty"`
	Model           string            `json:"model,omitempty"`
	AspectRatio     flyer.AspectRatio `json:"aspect_ratio,omitempty"`
	Quality         string            `json:"quality,omitempty"`
	NegativePrompt  string            `json:"negative_prompt,omitempty"`
	Count           int               `json:"count,omitempty"`
}

type refineResponse struct {
	Prompt  string         `json:"prompt"`
	Results []image.Result `json:"results,omitempty"`
}

// RefineFlyer rewrites a previously assembled prompt from user feedback and
// optionally regenerates. Reformatting to another aspect ratio takes
// precedence over feedback-driven refinement.
func (a *App) RefineFlyer(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var refined string
	switch {
	case req.ReformatTo != "":
		instruction, err := prompt.ReformatPrompt(req.ReformatTo)
		if err != nil {
			a.error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		refined = instruction
		if req.AspectRatio == "" {
			req.AspectRatio = req.ReformatTo
		}
		req.Edit = req.SourceImagePath != ""
	default:
		if strings.TrimSpace(req.PriorPrompt) == "" {
			a.error(w, http.StatusBadRequest, "prior_prompt is required")
			return
		}
		if strings.TrimSpace(req.Feedback) == "" {
			a.error(w, http.StatusBadRequest, "feedback is required")
			return
		}
		refined = prompt.Refine(req.PriorPrompt, req.Feedback)
		if req.Edit && req.SourceImagePath != "" {
			refined = prompt.EditInstruction(refined, req.Feedback)
		}
	}

	resp := refineResponse{Prompt: refined}
	if req.Regenerate {
		model := req.Model
		if model == "" {
			model = flyer.DefaultModel
		}
		ratio := req.AspectRatio
		if ratio == "" {
			ratio = flyer.RatioPortrait
		}
		quality := req.Quality
		if quality == "" {
			quality = flyer.DefaultQuality
		}
		var inputImages []string
		if req.Edit && req.SourceImagePath != "" {
			inputImages = append(inputImages, req.SourceImagePath)
		}
		resp.Results = a.Generator.Generate(r.Context(), image.Request{
			Prompt:          refined,
			NegativePrompt:  req.NegativePrompt,
			Model:           model,
			AspectRatio:     ratio,
			Quality:         quality,
			Count:           req.Count,
			InputImagePaths: inputImages,
		})
	}
	a.json(w, http.StatusOK, resp)
}

type categoryInfo struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"display_name"`
	TextFields        []string `json:"text_fields,omitempty"`
	SuggestedElements []string `json:"suggested_elements,omitempty"`
}

// Categories lists the supported flyer categories with the text fields and
// visual elements intake surfaces should offer for each.
func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	categories := make([]categoryInfo, 0, len(flyer.AllCategories()))
	for _, c := range flyer.AllCategories() {
		categories = append(categories, categoryInfo{
			ID:                string(c),
			DisplayName:       c.DisplayName(),
			TextFields:        flyer.CategoryTextFields[c],
			SuggestedElements: flyer.CategorySuggestedElements[c],
		})
	}
	a.json(w, http.StatusOK, map[string]any{"categories": categories})
}
