package image

import (
	"fmt"
	"sort"

	"github.com/i4ali/flygen/internal/flyer"
)

// Protocol identifies the wire family a backend speaks.
type Protocol string

const (
	// ProtocolImage is the classic image-synthesis endpoint
	// (POST /images/generations with a pixel size string).
	ProtocolImage Protocol = "image"
	// ProtocolChat is the multimodal chat endpoint
	// (POST /chat/completions with image modalities).
	ProtocolChat Protocol = "chat"
)

// Backend describes the capabilities of one symbolic model. Dispatch decisions
// are driven entirely by this data; adding a model means adding a row here.
type Backend struct {
	Protocol           Protocol
	AcceptsInputImages bool
	// ProxyModel is the identifier used when routing through OpenRouter.
	ProxyModel string
	// FilePrefix names saved output files for this backend.
	FilePrefix string
}

// Catalog maps symbolic model names to their backend descriptors.
var Catalog = map[string]Backend{
	"dall-e-3": {
		Protocol:   ProtocolImage,
		ProxyModel: "openai/dall-e-3",
		FilePrefix: "dalle3",
	},
	"gpt-image-1": {
		Protocol:   ProtocolImage,
		ProxyModel: "openai/gpt-image-1",
		FilePrefix: "gptimg",
	},
	"nano-banana": {
		Protocol:           ProtocolChat,
		AcceptsInputImages: true,
		ProxyModel:         "google/gemini-2.5-flash-image-preview",
		FilePrefix:         "nanobanana",
	},
	"nano-banana-pro": {
		Protocol:           ProtocolChat,
		AcceptsInputImages: true,
		ProxyModel:         "google/gemini-3-pro-image-preview",
		FilePrefix:         "nanobanana",
	},
}

// LookupBackend resolves a symbolic model name against the catalog.
func LookupBackend(model string) (Backend, error) {
	backend, ok := Catalog[model]
	if !ok {
		return Backend{}, fmt.Errorf("image: unknown model %q (supported: %v)", model, SupportedModels())
	}
	return backend, nil
}

// SupportedModels returns the catalog's model names in sorted order.
func SupportedModels() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sizeForRatio maps flyer aspect ratios to the pixel size strings accepted by
// image-synthesis backends. Print ratios render portrait and rely on
// downstream cropping.
var sizeForRatio = map[flyer.AspectRatio]string{
	flyer.RatioSquare:    "1024x1024",
	flyer.RatioPortrait:  "1024x1024",
	flyer.RatioStory:     "1024x1792",
	flyer.RatioLandscape: "1792x1024",
	flyer.RatioLetter:    "1024x1792",
	flyer.RatioA4:        "1024x1792",
}

// chatRatio maps flyer aspect ratios to the ratio vocabulary of multimodal
// chat backends, which have no 4:5 or paper formats.
var chatRatio = map[flyer.AspectRatio]string{
	flyer.RatioSquare:    "1:1",
	flyer.RatioPortrait:  "3:4",
	flyer.RatioStory:     "9:16",
	flyer.RatioLandscape: "16:9",
	flyer.RatioLetter:    "3:4",
	flyer.RatioA4:        "3:4",
}

// SizeForRatio returns the pixel size string for an image-synthesis call.
// Unknown ratios fall back to square.
func SizeForRatio(ratio flyer.AspectRatio) string {
	if size, ok := sizeForRatio[ratio]; ok {
		return size
	}
	return "1024x1024"
}

// ChatRatio returns the aspect-ratio string for a multimodal chat call.
// Unknown ratios fall back to square.
func ChatRatio(ratio flyer.AspectRatio) string {
	if r, ok := chatRatio[ratio]; ok {
		return r
	}
	return "1:1"
}
