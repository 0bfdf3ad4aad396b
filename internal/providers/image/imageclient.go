package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// generated carries the normalized payload of one successful backend call.
type generated struct {
	URL           string
	Base64        string
	RevisedPrompt string
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    any    `json:"code,omitempty"`
}

// imageClient speaks the image-synthesis protocol: one POST to
// {base}/images/generations per image, pixel size strings, quality knobs that
// differ per model family.
type imageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type imageGenRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality,omitempty"`
	Style   string `json:"style,omitempty"`
}

type imageGenResponse struct {
	Data []struct {
		URL           string `json:"url"`
		B64JSON       string `json:"b64_json"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

func (c *imageClient) generate(ctx context.Context, model, prompt string, req Request) (*generated, error) {
	payload := imageGenRequest{
		Model:  model,
		Prompt: prompt,
		N:      1,
		Size:   SizeForRatio(req.AspectRatio),
	}
	switch {
	case strings.Contains(model, "dall-e-3"):
		payload.Quality = dalleQuality(req.Quality)
		payload.Style = "vivid"
	case strings.Contains(model, "gpt-image"):
		payload.Quality = gptImageQuality(req.Quality)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("image: encode request: %w", err)
	}
	endpoint := c.baseURL + "/images/generations"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("image: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var detail struct {
			Error *apiError `json:"error"`
		}
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error != nil && detail.Error.Message != "" {
			return nil, fmt.Errorf("image: %s", detail.Error.Message)
		}
		return nil, fmt.Errorf("image: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded imageGenResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("image: decode response: %w", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return nil, fmt.Errorf("image: %s", decoded.Error.Message)
	}
	if len(decoded.Data) == 0 {
		return nil, errors.New("image: empty response data")
	}
	first := decoded.Data[0]
	if first.URL == "" && first.B64JSON == "" {
		return nil, errors.New("image: response carries neither url nor b64_json")
	}
	return &generated{
		URL:           first.URL,
		Base64:        first.B64JSON,
		RevisedPrompt: first.RevisedPrompt,
	}, nil
}

// dalleQuality normalizes quality to the hd/standard pair dall-e-3 accepts.
// Both "hd" and "high" select hd; anything else is standard.
func dalleQuality(quality string) string {
	switch strings.ToLower(strings.TrimSpace(quality)) {
	case "hd", "high":
		return "hd"
	default:
		return "standard"
	}
}

// gptImageQuality normalizes quality to the low/medium/high scale of
// gpt-image-1. Unrecognized values (including "hd") select high.
func gptImageQuality(quality string) string {
	switch q := strings.ToLower(strings.TrimSpace(quality)); q {
	case "low", "medium", "high":
		return q
	default:
		return "high"
	}
}
