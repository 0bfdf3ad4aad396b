package prompt

import (
	"fmt"

	"github.com/i4ali/flygen/internal/flyer"
)

// Descriptor tables expand each enumerated choice into the natural-language
// fragment the assembled prompt uses. Tables are pure data; ValidateTables
// checks at startup that every enum value has an entry, so an out-of-sync
// table is caught before the first request instead of mid-assembly.

var categoryContext = map[flyer.Category]string{
	flyer.CategoryEvent:            "event promotional flyer design",
	flyer.CategorySalePromo:        "sale and promotion flyer with urgency-driving design elements",
	flyer.CategoryAnnouncement:     "announcement flyer with clear information hierarchy",
	flyer.CategoryRestaurantFood:   "restaurant or food service promotional flyer with appetizing appeal",
	flyer.CategoryRealEstate:       "real estate listing flyer with professional property showcase",
	flyer.CategoryJobPosting:       "job recruitment flyer with professional yet approachable design",
	flyer.CategoryClassWorkshop:    "educational class or workshop promotional flyer",
	flyer.CategoryGrandOpening:     "grand opening celebration flyer with festive excitement",
	flyer.CategoryPartyCelebration: "party or celebration event flyer with fun energetic design",
	flyer.CategoryFitnessWellness:  "fitness or wellness promotional flyer with energizing appeal",
	flyer.CategoryNonprofitCharity: "nonprofit or charity flyer with heartfelt community appeal",
	flyer.CategoryMusicConcert:     "music event or concert flyer with dynamic artistic style",
}

var styleDescriptors = map[flyer.VisualStyle]string{
	flyer.StyleModernMinimal: "modern minimalist design with clean lines, generous white space, " +
		"contemporary sans-serif typography aesthetic, uncluttered composition, " +
		"sophisticated simplicity",
	flyer.StyleBoldVibrant: "bold vibrant design with strong saturated colors, high contrast, " +
		"impactful heavy typography, energetic dynamic composition, " +
		"eye-catching visual punch",
	flyer.StyleElegantLuxury: "elegant luxury design with sophisticated muted color palette, " +
		"refined serif typography, premium high-end feel, subtle gold or metallic accents, " +
		"tasteful restraint",
	flyer.StyleRetroVintage: "retro vintage design with nostalgic color palette, classic typography, " +
		"aged paper textures, throwback aesthetic from mid-century era, " +
		"warm nostalgic feeling",
	flyer.StylePlayfulFun: "playful fun design with bright cheerful colors, rounded friendly shapes, " +
		"whimsical illustrated elements, bouncy typography, " +
		"joyful energetic composition",
	flyer.StyleCorporateProfessional: "corporate professional design with business-appropriate colors, " +
		"structured grid layout, clean sans-serif typography, " +
		"trustworthy and credible appearance",
	flyer.StyleHandDrawnOrganic: "hand-drawn organic design with sketched illustrated elements, " +
		"natural textures, artisanal craft feel, warm imperfect hand-made lines, " +
		"authentic character",
	flyer.StyleNeonGlow: "neon glow design with vibrant glowing colors on dark background, " +
		"electric lighting effects, cyberpunk-inspired aesthetic, " +
		"nightlife energy and excitement",
	flyer.StyleGradientModern: "modern gradient design with smooth color transitions, " +
		"contemporary tech aesthetic, fluid shapes, " +
		"fresh and forward-looking appearance",
	flyer.StyleWatercolorArtistic: "watercolor artistic design with soft painted textures, " +
		"flowing organic shapes, artistic hand-crafted feel, " +
		"gentle and creative aesthetic",
}

var moodDescriptors = map[flyer.Mood]string{
	flyer.MoodUrgent:        "creates strong sense of urgency and immediate action needed, time-sensitive feel",
	flyer.MoodExciting:      "builds excitement and anticipation, energetic and thrilling atmosphere",
	flyer.MoodCalm:          "peaceful and calming visual atmosphere, serene and relaxing",
	flyer.MoodElegant:       "sophisticated and refined aesthetic, upscale and tasteful",
	flyer.MoodFriendly:      "warm, approachable, and welcoming feel, inviting and accessible",
	flyer.MoodProfessional:  "business-appropriate and trustworthy, competent and reliable",
	flyer.MoodFestive:       "celebratory and joyful atmosphere, party-ready excitement",
	flyer.MoodSerious:       "serious and important tone, gravitas and significance",
	flyer.MoodInspirational: "uplifting and motivating feel, aspirational and empowering",
	flyer.MoodRomantic:      "romantic and intimate atmosphere, love and warmth",
}

// paletteDescriptors describes each preset. The custom preset is deliberately
// empty: explicit colors are expected to supply the scheme instead.
var paletteDescriptors = map[flyer.PalettePreset]string{
	flyer.PaletteWarm:       "warm color palette with reds, oranges, yellows, and warm browns",
	flyer.PaletteCool:       "cool color palette with blues, teals, purples, and cool grays",
	flyer.PaletteEarthTones: "earthy natural palette with browns, tans, olive greens, and terracotta",
	flyer.PaletteNeon:       "vibrant neon palette with electric pinks, bright greens, and glowing colors",
	flyer.PalettePastel:     "soft pastel palette with gentle muted tones, light and airy colors",
	flyer.PaletteMonochrome: "monochromatic palette with variations of a single color, sophisticated restraint",
	flyer.PaletteBlackGold:  "luxurious black and gold palette, premium and elegant",
	flyer.PaletteCustom:     "",
}

var backgroundDescriptors = map[flyer.BackgroundType]string{
	flyer.BackgroundSolid:    "solid color background, clean and simple",
	flyer.BackgroundGradient: "gradient background with smooth color transition",
	flyer.BackgroundTextured: "textured background with subtle visual interest",
	flyer.BackgroundLight:    "light colored background, bright and airy",
	flyer.BackgroundDark:     "dark colored background, dramatic and bold",
}

var aspectRatioInstructions = map[flyer.AspectRatio]string{
	flyer.RatioSquare:    "square 1:1 aspect ratio composition",
	flyer.RatioPortrait:  "portrait 4:5 aspect ratio, taller than wide",
	flyer.RatioStory:     "vertical 9:16 story format, very tall and narrow",
	flyer.RatioLandscape: "landscape 16:9 aspect ratio, wide banner format",
	flyer.RatioLetter:    "US letter size 8.5x11 proportions for print",
	flyer.RatioA4:        "A4 paper proportions for international print",
}

var prominenceInstructions = map[flyer.TextProminence]string{
	flyer.ProminenceDominant: "Text should be the dominant visual element, large and commanding, " +
		"with imagery playing a supporting role in the background or as subtle accents",
	flyer.ProminenceBalanced: "Text and imagery should have balanced visual weight, " +
		"complementing each other in a harmonious composition",
	flyer.ProminenceSubtle: "Imagery should be the dominant visual element, " +
		"with text elegantly integrated but not overpowering the visuals",
}

var imageryInstructions = map[flyer.ImageryType]string{
	flyer.ImageryIllustrated:       "with custom illustrated graphic elements, artistic drawings",
	flyer.ImageryPhotoRealistic:    "with photo-realistic imagery, lifelike visual elements",
	flyer.ImageryAbstractGeometric: "with abstract geometric shapes and patterns, modern graphic elements",
	flyer.ImageryPattern:           "with decorative pattern elements, repeating motifs",
	flyer.ImageryMinimalTextOnly:   "typography-focused with minimal to no imagery, text as the visual element",
	flyer.ImageryNoText: "with NO text or words rendered in the image. " +
		"Create a clean design with appropriate empty space where text can be added later. " +
		"Do NOT include any text, letters, numbers, or written content.",
}

// languageInstructions tells the model which language to render text in.
// Structured fields (addresses, phone numbers, emails, URLs) are never
// translated.
var languageInstructions = map[flyer.Language]string{
	flyer.LanguageEnglish: "Generate all text content in English.",
	flyer.LanguageSpanish: "Generate all text content in Spanish (Español). Translate headlines, descriptions, " +
		"and calls-to-action to Spanish. DO NOT translate addresses, phone numbers, emails, or URLs - " +
		"keep them exactly as provided. If the user provides text in another language, translate it to " +
		"Spanish while preserving the intended meaning and tone.",
	flyer.LanguageUrdu: "Generate all text content in Urdu (اردو). Use Nastaliq script. Render Urdu text " +
		"right-to-left. Translate headlines, descriptions, and calls-to-action to Urdu. DO NOT translate " +
		"addresses, phone numbers, emails, or URLs - keep them exactly as provided in left-to-right order. " +
		"If the user provides text in another language, translate it to Urdu while preserving the intended " +
		"meaning and tone.",
	flyer.LanguageArabic: "Generate all text content in Arabic (العربية). Render Arabic text right-to-left. " +
		"Translate headlines, descriptions, and calls-to-action to Arabic. DO NOT translate addresses, " +
		"phone numbers, emails, or URLs - keep them exactly as provided in left-to-right order. If the " +
		"user provides text in another language, translate it to Arabic while preserving the intended " +
		"meaning and tone.",
	flyer.LanguageChinese: "Generate all text content in Simplified Chinese (简体中文). Translate headlines, " +
		"descriptions, and calls-to-action to Chinese. DO NOT translate addresses, phone numbers, emails, " +
		"or URLs - keep them exactly as provided. If the user provides text in another language, translate " +
		"it to Chinese while preserving the intended meaning and tone.",
}

// universalNegatives lists generic AI-art failure modes appended to every
// negative prompt, in a fixed order.
var universalNegatives = []string{
	"blurry or fuzzy text",
	"misspelled words",
	"illegible unreadable text",
	"cut-off cropped text",
	"overlapping colliding elements",
	"cluttered busy composition",
	"low resolution pixelated",
	"watermarks",
	"amateur unprofessional design",
	"cheap clipart",
	"cheesy dated effects",
	"excessive drop shadows",
	"word art",
	"stretched distorted images",
	"poor contrast",
	"random floating elements",
	"inconsistent style mixing",
	"too many fonts",
	"unbalanced layout",
}

// categoryNegatives adds per-category failure modes. Not every category has
// entries; missing categories contribute nothing.
var categoryNegatives = map[flyer.Category][]string{
	flyer.CategoryEvent:            {"boring static composition", "unclear date and time"},
	flyer.CategorySalePromo:        {"subtle hidden pricing", "calm muted urgency", "buried discount"},
	flyer.CategoryRestaurantFood:   {"unappetizing imagery", "cold sterile colors"},
	flyer.CategoryRealEstate:       {"cluttered property view", "unprofessional layout"},
	flyer.CategoryJobPosting:       {"too casual", "unclear position"},
	flyer.CategoryClassWorkshop:    {"intimidating imagery", "overly complex confusing"},
	flyer.CategoryGrandOpening:     {"subdued underwhelming", "no celebration feeling"},
	flyer.CategoryPartyCelebration: {"boring serious tone", "corporate stiffness"},
	flyer.CategoryFitnessWellness:  {"intimidating extreme imagery", "unhealthy appearance"},
	flyer.CategoryNonprofitCharity: {"exploitative imagery", "guilt-inducing"},
	flyer.CategoryMusicConcert:     {"static boring composition", "silent feeling"},
}

// ValidateTables verifies that every enum value has a descriptor entry.
// Services call it once at startup so a table drifting out of sync with the
// domain enums fails loudly instead of producing a silently degraded prompt.
func ValidateTables() error {
	for _, c := range flyer.AllCategories() {
		if _, ok := categoryContext[c]; !ok {
			return fmt.Errorf("prompt: category %q missing context entry", c)
		}
	}
	for _, s := range flyer.AllVisualStyles() {
		if _, ok := styleDescriptors[s]; !ok {
			return fmt.Errorf("prompt: visual style %q missing descriptor", s)
		}
	}
	for _, m := range flyer.AllMoods() {
		if _, ok := moodDescriptors[m]; !ok {
			return fmt.Errorf("prompt: mood %q missing descriptor", m)
		}
	}
	for _, p := range flyer.AllPalettePresets() {
		if _, ok := paletteDescriptors[p]; !ok {
			return fmt.Errorf("prompt: palette preset %q missing descriptor", p)
		}
	}
	for _, b := range flyer.AllBackgroundTypes() {
		if _, ok := backgroundDescriptors[b]; !ok {
			return fmt.Errorf("prompt: background type %q missing descriptor", b)
		}
	}
	for _, r := range flyer.AllAspectRatios() {
		if _, ok := aspectRatioInstructions[r]; !ok {
			return fmt.Errorf("prompt: aspect ratio %q missing instruction", r)
		}
	}
	for _, p := range flyer.AllTextProminences() {
		if _, ok := prominenceInstructions[p]; !ok {
			return fmt.Errorf("prompt: text prominence %q missing instruction", p)
		}
	}
	for _, i := range flyer.AllImageryTypes() {
		if _, ok := imageryInstructions[i]; !ok {
			return fmt.Errorf("prompt: imagery type %q missing instruction", i)
		}
	}
	for _, l := range flyer.AllLanguages() {
		if _, ok := languageInstructions[l]; !ok {
			return fmt.Errorf("prompt: language %q missing instruction", l)
		}
	}
	return nil
}

func lookupCategoryContext(c flyer.Category) (string, error) {
	desc, ok := categoryContext[c]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized category %q", c)
	}
	return desc, nil
}

func lookupStyle(s flyer.VisualStyle) (string, error) {
	desc, ok := styleDescriptors[s]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized visual style %q", s)
	}
	return desc, nil
}

func lookupMood(m flyer.Mood) (string, error) {
	desc, ok := moodDescriptors[m]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized mood %q", m)
	}
	return desc, nil
}

func lookupPalette(p flyer.PalettePreset) (string, error) {
	desc, ok := paletteDescriptors[p]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized palette preset %q", p)
	}
	return desc, nil
}

func lookupBackground(b flyer.BackgroundType) (string, error) {
	desc, ok := backgroundDescriptors[b]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized background type %q", b)
	}
	return desc, nil
}

func lookupAspectRatio(r flyer.AspectRatio) (string, error) {
	desc, ok := aspectRatioInstructions[r]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized aspect ratio %q", r)
	}
	return desc, nil
}

func lookupProminence(p flyer.TextProminence) (string, error) {
	desc, ok := prominenceInstructions[p]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized text prominence %q", p)
	}
	return desc, nil
}

func lookupImagery(i flyer.ImageryType) (string, error) {
	desc, ok := imageryInstructions[i]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized imagery type %q", i)
	}
	return desc, nil
}

func lookupLanguage(l flyer.Language) (string, error) {
	desc, ok := languageInstructions[l]
	if !ok {
		return "", fmt.Errorf("prompt: unrecognized language %q", l)
	}
	return desc, nil
}
