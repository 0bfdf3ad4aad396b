package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// chatClient speaks the multimodal chat protocol: POST {base}/chat/completions
// with image modalities. Reference images travel inline as data URLs ahead of
// the prompt text, and the rendered image comes back as a data URL.
type chatClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type chatGenRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Modalities  []string      `json:"modalities"`
	ImageConfig *imageConfig  `json:"image_config,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

type imageConfig struct {
	AspectRatio string `json:"aspect_ratio"`
}

type chatGenResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Images  []struct {
				ImageURL imageURLPart `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

func (c *chatClient) generate(ctx context.Context, model, prompt string, req Request, inputImages []string) (*generated, error) {
	parts := make([]contentPart, 0, len(inputImages)+1)
	for _, path := range inputImages {
		dataURL, err := encodeImageFile(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURLPart{URL: dataURL}})
	}
	parts = append(parts, contentPart{Type: "text", Text: prompt})

	payload := chatGenRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: parts}},
		Modalities:  []string{"image", "text"},
		ImageConfig: &imageConfig{AspectRatio: ChatRatio(req.AspectRatio)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("image: encode request: %w", err)
	}
	endpoint := c.baseURL + "/chat/completions"
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

	var decoded chatGenResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("image: decode response: %w", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return nil, fmt.Errorf("image: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return nil, errors.New("image: empty response choices")
	}
	message := decoded.Choices[0].Message
	if len(message.Images) == 0 {
		return nil, errors.New("image: response carries no image")
	}
	b64, err := base64FromDataURL(message.Images[0].ImageURL.URL)
	if err != nil {
		return nil, err
	}
	return &generated{
		Base64:        b64,
		RevisedPrompt: strings.TrimSpace(message.Content),
	}, nil
}

// encodeImageFile reads a local image and wraps it in a data URL.
func encodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("image: read input image: %w", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeForPath(path), base64.StdEncoding.EncodeToString(data)), nil
}

// base64FromDataURL strips the data-URL envelope and returns the raw base64
// payload. Plain base64 without an envelope passes through unchanged.
func base64FromDataURL(url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", errors.New("image: empty image url in response")
	}
	if !strings.HasPrefix(url, "data:") {
		return url, nil
	}
	_, payload, ok := strings.Cut(url, ",")
	if !ok || payload == "" {
		return "", errors.New("image: malformed data url in response")
	}
	return payload, nil
}

func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
