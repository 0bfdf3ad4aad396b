package flyer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category identifies the purpose of a flyer. It drives descriptor lookup and
// category-specific text-field relevance.
type Category string

const (
	CategoryEvent            Category = "event"
	CategorySalePromo        Category = "sale_promo"
	CategoryAnnouncement     Category = "announcement"
	CategoryRestaurantFood   Category = "restaurant_food"
	CategoryRealEstate       Category = "real_estate"
	CategoryJobPosting       Category = "job_posting"
	CategoryClassWorkshop    Category = "class_workshop"
	CategoryGrandOpening     Category = "grand_opening"
	CategoryPartyCelebration Category = "party_celebration"
	CategoryFitnessWellness  Category = "fitness_wellness"
	CategoryNonprofitCharity Category = "nonprofit_charity"
	CategoryMusicConcert     Category = "music_concert"
)

var categoryDisplayNames = map[Category]string{
	CategoryEvent:            "Event",
	CategorySalePromo:        "Sale / Promotion",
	CategoryAnnouncement:     "Announcement",
	CategoryRestaurantFood:   "Restaurant / Food",
	CategoryRealEstate:       "Real Estate",
	CategoryJobPosting:       "Job Posting",
	CategoryClassWorkshop:    "Class / Workshop",
	CategoryGrandOpening:     "Grand Opening",
	CategoryPartyCelebration: "Party / Celebration",
	CategoryFitnessWellness:  "Fitness / Wellness",
	CategoryNonprofitCharity: "Nonprofit / Charity",
	CategoryMusicConcert:     "Music / Concert",
}

// AllCategories returns every known category, in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryEvent, CategorySalePromo, CategoryAnnouncement,
		CategoryRestaurantFood, CategoryRealEstate, CategoryJobPosting,
		CategoryClassWorkshop, CategoryGrandOpening, CategoryPartyCelebration,
		CategoryFitnessWellness, CategoryNonprofitCharity, CategoryMusicConcert,
	}
}

func (c Category) Known() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// VisualStyle selects the overall design treatment.
type VisualStyle string

const (
	StyleModernMinimal         VisualStyle = "modern_minimal"
	StyleBoldVibrant           VisualStyle = "bold_vibrant"
	StyleElegantLuxury         VisualStyle = "elegant_luxury"
	StyleRetroVintage          VisualStyle = "retro_vintage"
	StylePlayfulFun            VisualStyle = "playful_fun"
	StyleCorporateProfessional VisualStyle = "corporate_professional"
	StyleHandDrawnOrganic      VisualStyle = "hand_drawn_organic"
	StyleNeonGlow              VisualStyle = "neon_glow"
	StyleGradientModern        VisualStyle = "gradient_modern"
	StyleWatercolorArtistic    VisualStyle = "watercolor_artistic"
)

// AllVisualStyles returns every known style, in declaration order.
func AllVisualStyles() []VisualStyle {
	return []VisualStyle{
		StyleModernMinimal, StyleBoldVibrant, StyleElegantLuxury,
		StyleRetroVintage, StylePlayfulFun, StyleCorporateProfessional,
		StyleHandDrawnOrganic, StyleNeonGlow, StyleGradientModern,
		StyleWatercolorArtistic,
	}
}

func (s VisualStyle) Known() bool {
	for _, known := range AllVisualStyles() {
		if s == known {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.English)

func (s VisualStyle) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

// Mood selects the emotional tone of the design.
type Mood string

const (
	MoodUrgent        Mood = "urgent"
	MoodExciting      Mood = "exciting"
	MoodCalm          Mood = "calm"
	MoodElegant       Mood = "elegant"
	MoodFriendly      Mood = "friendly"
	MoodProfessional  Mood = "professional"
	MoodFestive       Mood = "festive"
	MoodSerious       Mood = "serious"
	MoodInspirational Mood = "inspirational"
	MoodRomantic      Mood = "romantic"
)

// AllMoods returns every known mood, in declaration order.
func AllMoods() []Mood {
	return []Mood{
		MoodUrgent, MoodExciting, MoodCalm, MoodElegant, MoodFriendly,
		MoodProfessional, MoodFestive, MoodSerious, MoodInspirational,
		MoodRomantic,
	}
}

func (m Mood) Known() bool {
	for _, known := range AllMoods() {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) DisplayName() string {
	return titleCaser.String(string(m))
}

// AspectRatio selects the output format. The string values are part of the
// public vocabulary and must be preserved exactly.
type AspectRatio string

const (
	RatioSquare    AspectRatio = "1:1"
	RatioPortrait  AspectRatio = "4:5"
	RatioStory     AspectRatio = "9:16"
	RatioLandscape AspectRatio = "16:9"
	RatioLetter    AspectRatio = "letter"
	RatioA4        AspectRatio = "a4"
)

var aspectRatioDisplayNames = map[AspectRatio]string{
	RatioSquare:    "Square (1:1) - Instagram",
	RatioPortrait:  "Portrait (4:5) - Instagram",
	RatioStory:     "Story (9:16) - Stories/Reels",
	RatioLandscape: "Landscape (16:9) - Banner",
	RatioLetter:    "Letter (8.5x11) - Print",
	RatioA4:        "A4 - International Print",
}

// AllAspectRatios returns every known aspect ratio, in declaration order.
func AllAspectRatios() []AspectRatio {
	return []AspectRatio{
		RatioSquare, RatioPortrait, RatioStory, RatioLandscape,
		RatioLetter, RatioA4,
	}
}

func (r AspectRatio) Known() bool {
	_, ok := aspectRatioDisplayNames[r]
	return ok
}

func (r AspectRatio) DisplayName() string {
	if name, ok := aspectRatioDisplayNames[r]; ok {
		return name
	}
	return string(r)
}

// PalettePreset names a predefined color palette.
type PalettePreset string

const (
	PaletteWarm       PalettePreset = "warm"
	PaletteCool       PalettePreset = "cool"
	PaletteEarthTones PalettePreset = "earth_tones"
	PaletteNeon       PalettePreset = "neon"
	PalettePastel     PalettePreset = "pastel"
	PaletteMonochrome PalettePreset = "monochrome"
	PaletteBlackGold  PalettePreset = "black_gold"
	PaletteCustom     PalettePreset = "custom"
)

// AllPalettePresets returns every known preset, in declaration order.
func AllPalettePresets() []PalettePreset {
	return []PalettePreset{
		PaletteWarm, PaletteCool, PaletteEarthTones, PaletteNeon,
		PalettePastel, PaletteMonochrome, PaletteBlackGold, PaletteCustom,
	}
}

func (p PalettePreset) Known() bool {
	for _, known := range AllPalettePresets() {
		if p == known {
			return true
		}
	}
	return false
}

// BackgroundType selects the background style.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundTextured BackgroundType = "textured"
	BackgroundLight    BackgroundType = "light"
	BackgroundDark     BackgroundType = "dark"
)

// AllBackgroundTypes returns every known background type, in declaration order.
func AllBackgroundTypes() []BackgroundType {
	return []BackgroundType{
		BackgroundSolid, BackgroundGradient, BackgroundTextured,
		BackgroundLight, BackgroundDark,
	}
}

func (b BackgroundType) Known() bool {
	for _, known := range AllBackgroundTypes() {
		if b == known {
			return true
		}
	}
	return false
}

// TextProminence balances text weight against imagery.
type TextProminence string

const (
	ProminenceDominant TextProminence = "dominant"
	ProminenceBalanced TextProminence = "balanced"
	ProminenceSubtle   TextProminence = "subtle"
)

// AllTextProminences returns every known prominence, in declaration order.
func AllTextProminences() []TextProminence {
	return []TextProminence{ProminenceDominant, ProminenceBalanced, ProminenceSubtle}
}

func (p TextProminence) Known() bool {
	for _, known := range AllTextProminences() {
		if p == known {
			return true
		}
	}
	return false
}

// ImageryType selects the kind of visual elements to render.
type ImageryType string

const (
	ImageryIllustrated       ImageryType = "illustrated"
	ImageryPhotoRealistic    ImageryType = "photo_realistic"
	ImageryAbstractGeometric ImageryType = "abstract_geometric"
	ImageryPattern           ImageryType = "pattern"
	ImageryMinimalTextOnly   ImageryType = "minimal_text_only"
	// ImageryNoText produces a design without any rendered text so the user
	// can overlay their own text in an external tool.
	ImageryNoText ImageryType = "no_text"
)

// AllImageryTypes returns every known imagery type, in declaration order.
func AllImageryTypes() []ImageryType {
	return []ImageryType{
		ImageryIllustrated, ImageryPhotoRealistic, ImageryAbstractGeometric,
		ImageryPattern, ImageryMinimalTextOnly, ImageryNoText,
	}
}

func (i ImageryType) Known() bool {
	for _, known := range AllImageryTypes() {
		if i == known {
			return true
		}
	}
	return false
}

// Language selects the output language for flyer text.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageUrdu    Language = "ur"
	LanguageArabic  Language = "ar"
	LanguageChinese Language = "zh"
)

var languageDisplayNames = map[Language]string{
	LanguageEnglish: "English",
	LanguageSpanish: "Español (Spanish)",
	LanguageUrdu:    "اردو (Urdu)",
	LanguageArabic:  "العربية (Arabic)",
	LanguageChinese: "中文 (Chinese)",
}

// AllLanguages returns every known language, in declaration order.
func AllLanguages() []Language {
	return []Language{
		LanguageEnglish, LanguageSpanish, LanguageUrdu,
		LanguageArabic, LanguageChinese,
	}
}

func (l Language) Known() bool {
	_, ok := languageDisplayNames[l]
	return ok
}

func (l Language) DisplayName() string {
	if name, ok := languageDisplayNames[l]; ok {
		return name
	}
	return string(l)
}
