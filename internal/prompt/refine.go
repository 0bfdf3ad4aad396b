package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/i4ali/flygen/internal/flyer"
)

// feedbackPatterns maps keyword phrases found in free-text user feedback to
// canonical prompt modifications. Matching is substring-based and
// case-insensitive; this is a best-effort heuristic, and anything that does
// not match falls through to the raw-feedback path by design.
var feedbackPatterns = map[string]string{
	"bigger":        "larger, more prominent text that commands attention",
	"bigger text":   "larger, more prominent text that commands attention",
	"larger":        "larger, more prominent text that commands attention",
	"larger text":   "larger, more prominent text that commands attention",
	"can't read":    "larger, more prominent text with better contrast for readability",
	"more readable": "clearer, more legible text with improved contrast",
	"too busy":      "simplified composition with more white space and less clutter",
	"cluttered":     "cleaner, more organized layout with breathing room",
	"too much":      "simplified design with fewer elements",
	"cleaner":       "more minimalist design with cleaner composition",
	"boring":        "more dynamic and visually exciting composition",
	"plain":         "more visually interesting design with engaging elements",
	"more exciting": "more dynamic, energetic, and attention-grabbing design",
	"brighter":      "more vibrant and colorful palette with higher saturation",
	"more color":    "richer, more colorful design with varied hues",
	"vibrant":       "bold, saturated colors with high visual impact",
	"darker":        "deeper, moodier color treatment",
	"muted":         "more subtle and restrained color palette",
	"subtle":        "more understated and refined visual treatment",
	"professional":  "more polished, business-appropriate aesthetic",
	"corporate":     "more formal, corporate-style design",
	"serious":       "more professional and serious tone",
	"fun":           "more playful and casual feel",
	"playful":       "more whimsical and fun design elements",
	"casual":        "more relaxed and approachable aesthetic",
	"modern":        "more contemporary and current design style",
	"dynamic":       "more energetic layout with visual movement",
}

// Refine appends canonical modifications derived from user feedback to a
// previously assembled prompt. Unrecognized feedback is appended verbatim
// under a changes-requested header, which is the intended fallback rather
// than an error.
func Refine(priorPrompt, feedback string) string {
	lower := strings.ToLower(feedback)

	seen := make(map[string]struct{})
	var modifications []string
	for pattern, modification := range feedbackPatterns {
		if !strings.Contains(lower, pattern) {
			continue
		}
		if _, dup := seen[modification]; dup {
			continue
		}
		seen[modification] = struct{}{}
		modifications = append(modifications, modification)
	}

	if len(modifications) == 0 {
		return fmt.Sprintf("%s\n\nIMPORTANT CHANGES REQUESTED: %s", priorPrompt, feedback)
	}

	// Sorted so the same feedback always yields the same prompt.
	sort.Strings(modifications)
	return fmt.Sprintf("%s\n\nIMPORTANT MODIFICATIONS: Apply these changes: %s.",
		priorPrompt, strings.Join(modifications, ", "))
}

// EditInstruction extends a refined prompt with image-editing directions for
// backends that accept the previous render as a reference image.
func EditInstruction(refinedPrompt, feedback string) string {
	return fmt.Sprintf(
		"%s\n\nEDIT MODE: Modify the provided image with these specific changes: %s. "+
			"Preserve all other elements exactly as they appear in the original image.",
		refinedPrompt, feedback)
}

// ReformatPrompt produces the instruction used to re-render an existing flyer
// at a different aspect ratio while preserving its text and layout.
func ReformatPrompt(target flyer.AspectRatio) (string, error) {
	if !target.Known() {
		return "", fmt.Errorf("prompt: unrecognized aspect ratio %q", target)
	}
	return fmt.Sprintf(
		"Reformat this flyer image to %s aspect ratio. "+
			"Preserve ALL text exactly as shown - do not change any words or spelling. "+
			"Maintain the same visual style, colors, and layout as much as possible. "+
			"Adapt the composition to fit the new dimensions naturally.",
		target), nil
}
