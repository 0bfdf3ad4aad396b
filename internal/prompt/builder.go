package prompt

import (
	"fmt"
	"strings"

	"github.com/i4ali/flygen/internal/flyer"
)

// Package is the assembled output handed to the generation dispatcher.
type Package struct {
	MainPrompt     string            `json:"main_prompt"`
	NegativePrompt string            `json:"negative_prompt"`
	AspectRatio    flyer.AspectRatio `json:"aspect_ratio"`
	Model          string            `json:"model"`
	Quality        string            `json:"quality"`
}

// Chunk-size thresholds for the spelling-emphasis algorithm. The split points
// were tuned empirically against model spelling accuracy; treat them as part
// of the contract, not an implementation detail.
const (
	subheadlineChunkAfter = 8
	subheadlineChunkSize  = 5
	bodyChunkAfter        = 10
	bodyChunkSize         = 8
	finePrintChunkAfter   = 8
	finePrintChunkSize    = 5
)

// Assemble turns a flyer spec into a generation prompt package. It is a pure
// function: the same spec always yields byte-identical prompts. The only
// error condition is an enum value with no descriptor entry, which indicates
// the tables are out of sync with the domain model.
func Assemble(spec flyer.Spec) (Package, error) {
	main, err := buildMainPrompt(spec)
	if err != nil {
		return Package{}, err
	}
	return Package{
		MainPrompt:     main,
		NegativePrompt: buildNegativePrompt(spec),
		AspectRatio:    spec.Output.AspectRatio,
		Model:          spec.Output.Model,
		Quality:        spec.Output.Quality,
	}, nil
}

func buildMainPrompt(spec flyer.Spec) (string, error) {
	var sections []string
	noText := spec.Visuals.ImageryType == flyer.ImageryNoText

	// 1. Core instruction with category context.
	context, err := lookupCategoryContext(spec.Category)
	if err != nil {
		return "", err
	}
	sections = append(sections, fmt.Sprintf("Create a professional high-quality %s.", context))

	// 2. Aspect ratio / format.
	format, err := lookupAspectRatio(spec.Output.AspectRatio)
	if err != nil {
		return "", err
	}
	sections = append(sections, fmt.Sprintf("Format: %s.", format))

	// 3. Visual style.
	style, err := lookupStyle(spec.Visuals.Style)
	if err != nil {
		return "", err
	}
	sections = append(sections, fmt.Sprintf("Visual style: %s.", style))

	// 4. Mood / tone.
	mood, err := lookupMood(spec.Visuals.Mood)
	if err != nil {
		return "", err
	}
	sections = append(sections, fmt.Sprintf("Mood and tone: %s.", mood))

	// 5. Color palette.
	colors, err := buildColorSection(spec.Colors)
	if err != nil {
		return "", err
	}
	sections = append(sections, colors)

	// 6. Text content, or the no-text directive.
	if noText {
		sections = append(sections,
			"IMPORTANT: Do NOT render any text in this image. "+
				"Leave clean space for text to be added using external design tools like Canva or Photoshop.")
	} else {
		sections = append(sections, buildTextSection(spec.Text))
		if spec.Language != flyer.LanguageEnglish {
			instruction, err := lookupLanguage(spec.Language)
			if err != nil {
				return "", err
			}
			sections = append(sections, instruction)
		}
	}

	// 7. Text prominence, skipped in no-text mode.
	if !noText {
		prominence, err := lookupProminence(spec.Visuals.TextProminence)
		if err != nil {
			return "", err
		}
		sections = append(sections, fmt.Sprintf("IMPORTANT: %s.", prominence))
	}

	// 8. Imagery type, plus any explicit scene description.
	imagery, err := lookupImagery(spec.Visuals.ImageryType)
	if err != nil {
		return "", err
	}
	sections = append(sections, fmt.Sprintf("Visual elements %s.", imagery))
	if desc := strings.TrimSpace(spec.ImageryDescription); desc != "" {
		sections = append(sections, fmt.Sprintf("Imagery description: %s.", desc))
	}

	// 9. Specific elements to include.
	if len(spec.Visuals.IncludeElements) > 0 {
		sections = append(sections,
			fmt.Sprintf("Include visual elements such as: %s.", strings.Join(spec.Visuals.IncludeElements, ", ")))
	}

	// 10. Category-specific hints.
	sections = append(sections, buildCategoryHints(spec))

	// 11. Target audience.
	if spec.TargetAudience != "" {
		sections = append(sections, fmt.Sprintf("Design should appeal to: %s.", spec.TargetAudience))
	}

	// 12. Special instructions.
	if spec.SpecialInstructions != "" {
		sections = append(sections, fmt.Sprintf("Additional requirements: %s.", spec.SpecialInstructions))
	}

	// 13. Logo integration.
	if spec.LogoPath != "" {
		sections = append(sections,
			"IMPORTANT: Incorporate the provided logo image into the flyer design. "+
				"Place it prominently but tastefully, ensuring it is clearly visible and "+
				"integrates well with the overall design. The logo should be positioned "+
				"appropriately (typically top or bottom of the flyer) without overwhelming "+
				"the main content.")
	}

	// 14. Quality reminders, mode-dependent.
	if noText {
		sections = append(sections,
			"CRITICAL: This design must have NO TEXT whatsoever. "+
				"No letters, words, numbers, or written content of any kind. "+
				"Create empty space in key areas where text can be overlaid later. "+
				"Professional print-ready quality. "+
				"Visually striking and memorable design. "+
				"Balanced composition suitable for text overlay.")
	} else {
		sections = append(sections,
			"CRITICAL TEXT REQUIREMENTS: "+
				"All text must be spelled EXACTLY as specified above - double-check every letter. "+
				"Do not paraphrase, abbreviate, or modify any text. "+
				"Ensure all text is crisp, clear, and perfectly legible. "+
				"Professional print-ready quality. "+
				"Visually striking and memorable design. "+
				"Balanced composition with clear visual hierarchy.")
	}

	return joinSections(sections), nil
}

// buildColorSection resolves color instructions with a strict priority order:
// gradient stops beat an explicit background color, which beats the
// background-type descriptor alone. Explicit primary/secondary/accent colors
// are appended after the preset descriptor rather than merged into it.
func buildColorSection(colors flyer.ColorSettings) (string, error) {
	var parts []string

	palette, err := lookupPalette(colors.Preset)
	if err != nil {
		return "", err
	}
	if palette != "" {
		parts = append(parts, fmt.Sprintf("Color scheme: %s.", palette))
	}

	var specs []string
	if colors.PrimaryColor != "" {
		specs = append(specs, "primary: "+colors.PrimaryColor)
	}
	if colors.SecondaryColor != "" {
		specs = append(specs, "secondary: "+colors.SecondaryColor)
	}
	if colors.AccentColor != "" {
		specs = append(specs, "accent: "+colors.AccentColor)
	}
	if len(specs) > 0 {
		parts = append(parts, fmt.Sprintf("Specific colors: %s.", strings.Join(specs, ", ")))
	}

	background, err := lookupBackground(colors.BackgroundType)
	if err != nil {
		return "", err
	}
	switch {
	case len(colors.GradientColors) > 0:
		parts = append(parts, fmt.Sprintf("Background: gradient from %s.", strings.Join(colors.GradientColors, " to ")))
	case colors.BackgroundColor != "":
		parts = append(parts, fmt.Sprintf("Background: %s %s.", colors.BackgroundColor, background))
	default:
		parts = append(parts, fmt.Sprintf("Background: %s.", background))
	}

	return strings.Join(parts, " "), nil
}

// buildTextSection emits one spelling-emphasis clause per populated text
// field. The quoted string is always the untouched original value; only the
// parenthesized spelling sequence and the documented chunking are derived.
func buildTextSection(text flyer.TextContent) string {
	parts := []string{"TEXT CONTENT - CRITICAL: Spell ALL text EXACTLY as shown, letter by letter:"}

	if text.Headline != "" {
		parts = append(parts, fmt.Sprintf(
			`MAIN HEADLINE must read EXACTLY: "%s" (SPELLING: %s) - `+
				"this should be the most visually dominant text element. "+
				"Double-check every letter is correct.",
			text.Headline, spellOut(strings.ToUpper(text.Headline))))
	}

	if text.Subheadline != "" {
		if wordCount(text.Subheadline) > subheadlineChunkAfter {
			parts = append(parts, "Secondary headline (display across multiple lines if needed):")
			for _, chunk := range chunkWords(text.Subheadline, subheadlineChunkSize) {
				parts = append(parts, fmt.Sprintf(`  Line: "%s" (SPELLING: %s).`, chunk, spellOut(chunk)))
			}
		} else {
			parts = append(parts, fmt.Sprintf(
				`Secondary headline must read EXACTLY: "%s" (SPELLING: %s).`,
				text.Subheadline, spellOut(text.Subheadline)))
		}
	}

	if text.BodyText != "" {
		if wordCount(text.BodyText) > bodyChunkAfter {
			parts = append(parts, "Body content (display across multiple lines/sections):")
			for _, chunk := range chunkWords(text.BodyText, bodyChunkSize) {
				parts = append(parts, fmt.Sprintf(`  Section: "%s" (SPELLING: %s).`, chunk, spellOut(chunk)))
			}
		} else {
			parts = append(parts, fmt.Sprintf(
				`Body text must read EXACTLY: "%s" (SPELLING: %s).`,
				text.BodyText, spellOut(text.BodyText)))
		}
	}

	switch {
	case text.Date != "" && text.Time != "":
		combined := text.Date + " | " + text.Time
		parts = append(parts, fmt.Sprintf(`Date/time must read EXACTLY: "%s" (SPELLING: %s).`, combined, spellOut(combined)))
	case text.Date != "":
		parts = append(parts, fmt.Sprintf(`Date must read EXACTLY: "%s" (SPELLING: %s).`, text.Date, spellOut(text.Date)))
	case text.Time != "":
		parts = append(parts, fmt.Sprintf(`Time must read EXACTLY: "%s" (SPELLING: %s).`, text.Time, spellOut(text.Time)))
	}

	address := stripCountrySuffix(text.Address)
	switch {
	case text.VenueName != "" && address != "":
		location := text.VenueName + " - " + address
		parts = append(parts, fmt.Sprintf(`Location must read EXACTLY: "%s" (SPELLING: %s).`, location, spellOut(location)))
	case text.VenueName != "":
		parts = append(parts, fmt.Sprintf(`Venue must read EXACTLY: "%s" (SPELLING: %s).`, text.VenueName, spellOut(text.VenueName)))
	case address != "":
		parts = append(parts, fmt.Sprintf(`Address must read EXACTLY: "%s" (SPELLING: %s).`, address, spellOut(address)))
	}

	// Discount supersedes price: only one of the two is ever emitted.
	if text.DiscountText != "" {
		parts = append(parts, fmt.Sprintf(
			`Discount/offer must read EXACTLY: "%s" (SPELLING: %s) - make this eye-catching and prominent.`,
			text.DiscountText, spellOut(text.DiscountText)))
	} else if text.Price != "" {
		parts = append(parts, fmt.Sprintf(`Price must read EXACTLY: "%s" (SPELLING: %s).`, text.Price, spellOut(text.Price)))
	}

	if text.CTAText != "" {
		parts = append(parts, fmt.Sprintf(`Call-to-action must read EXACTLY: "%s" (SPELLING: %s).`, text.CTAText, spellOut(text.CTAText)))
	}
	if text.Phone != "" {
		parts = append(parts, fmt.Sprintf(`Phone must read EXACTLY: "%s" (SPELLING: %s).`, text.Phone, spellOut(text.Phone)))
	}
	if text.Email != "" {
		parts = append(parts, fmt.Sprintf(`Email must read EXACTLY: "%s" (SPELLING: %s).`, text.Email, spellOut(text.Email)))
	}
	if text.Website != "" {
		parts = append(parts, fmt.Sprintf(`Website must read EXACTLY: "%s" (SPELLING: %s).`, text.Website, spellOut(text.Website)))
	}
	if text.SocialHandle != "" {
		parts = append(parts, fmt.Sprintf(`Social handle must read EXACTLY: "%s" (SPELLING: %s).`, text.SocialHandle, spellOut(text.SocialHandle)))
	}

	for _, info := range text.AdditionalInfo {
		parts = append(parts, fmt.Sprintf(`Additional detail must read EXACTLY: "%s" (SPELLING: %s).`, info, spellOut(info)))
	}

	if text.FinePrint != "" {
		if wordCount(text.FinePrint) > finePrintChunkAfter {
			parts = append(parts, "Fine print (can span multiple lines):")
			for _, chunk := range chunkWords(text.FinePrint, finePrintChunkSize) {
				parts = append(parts, fmt.Sprintf(`  Line: "%s" (SPELLING: %s).`, chunk, spellOut(chunk)))
			}
		} else {
			parts = append(parts, fmt.Sprintf(`Fine print must read EXACTLY: "%s" (SPELLING: %s).`, text.FinePrint, spellOut(text.FinePrint)))
		}
	}

	return strings.Join(parts, " ")
}

func buildCategoryHints(spec flyer.Spec) string {
	var hints []string
	switch spec.Category {
	case flyer.CategorySalePromo:
		if spec.Text.DiscountText != "" {
			hints = append(hints, "Ensure discount/offer is immediately visible and attention-grabbing.")
		}
	case flyer.CategoryEvent:
		if spec.Text.Date != "" {
			hints = append(hints, "Date and time should be clearly visible and easy to find.")
		}
	case flyer.CategoryGrandOpening:
		hints = append(hints, "Convey excitement and celebration of a new beginning.")
	}
	return strings.Join(hints, " ")
}

// buildNegativePrompt concatenates the universal failure modes, the
// category-specific ones, and the user's avoid-elements. Duplicates are
// tolerated; nothing is ever dropped.
func buildNegativePrompt(spec flyer.Spec) string {
	negatives := make([]string, 0, len(universalNegatives)+4)
	negatives = append(negatives, universalNegatives...)
	negatives = append(negatives, categoryNegatives[spec.Category]...)
	negatives = append(negatives, spec.Visuals.AvoidElements...)
	return strings.Join(negatives, ", ")
}

// spellOut returns the character-by-character spelling used for emphasis.
func spellOut(text string) string {
	runes := []rune(text)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}
	return strings.Join(chars, " ")
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// chunkWords splits text into groups of at most maxWords words, preserving
// word order and content.
func chunkWords(text string, maxWords int) []string {
	words := strings.Fields(text)
	var chunks []string
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// stripCountrySuffix drops a redundant trailing US country name from an
// address before it is rendered on the flyer.
func stripCountrySuffix(address string) string {
	for _, suffix := range []string{", United States", ", USA", ", US"} {
		if strings.HasSuffix(address, suffix) {
			return strings.TrimSuffix(address, suffix)
		}
	}
	return address
}

func joinSections(sections []string) string {
	kept := sections[:0]
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
