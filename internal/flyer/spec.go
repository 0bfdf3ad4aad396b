package flyer

// TextContent holds every text element that can appear on a flyer. All fields
// are optional; by convention only Headline is expected to be present.
type TextContent struct {
	Headline       string   `json:"headline"`
	Subheadline    string   `json:"subheadline,omitempty"`
	BodyText       string   `json:"body_text,omitempty"`
	Date           string   `json:"date,omitempty"`
	Time           string   `json:"time,omitempty"`
	VenueName      string   `json:"venue_name,omitempty"`
	Address        string   `json:"address,omitempty"`
	Price          string   `json:"price,omitempty"`
	DiscountText   string   `json:"discount_text,omitempty"`
	CTAText        string   `json:"cta_text,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Website        string   `json:"website,omitempty"`
	SocialHandle   string   `json:"social_handle,omitempty"`
	AdditionalInfo []string `json:"additional_info,omitempty"`
	FinePrint      string   `json:"fine_print,omitempty"`
}

// ColorSettings captures color preferences. Explicit colors override the
// preset descriptor; gradient stops override the solid background color,
// which overrides the background-type descriptor.
type ColorSettings struct {
	Preset          PalettePreset  `json:"preset"`
	PrimaryColor    string         `json:"primary_color,omitempty"`
	SecondaryColor  string         `json:"secondary_color,omitempty"`
	AccentColor     string         `json:"accent_color,omitempty"`
	BackgroundType  BackgroundType `json:"background_type"`
	BackgroundColor string         `json:"background_color,omitempty"`
	GradientColors  []string       `json:"gradient_colors,omitempty"`
}

// VisualSettings captures style preferences.
type VisualSettings struct {
	Style           VisualStyle    `json:"style"`
	Mood            Mood           `json:"mood"`
	TextProminence  TextProminence `json:"text_prominence"`
	ImageryType     ImageryType    `json:"imagery_type"`
	IncludeElements []string       `json:"include_elements,omitempty"`
	AvoidElements   []string       `json:"avoid_elements,omitempty"`
}

// OutputSettings captures output format settings.
type OutputSettings struct {
	AspectRatio AspectRatio `json:"aspect_ratio"`
	Quality     string      `json:"quality"`
	Model       string      `json:"model"`
}

// QRSettings configures an optional QR code. The code itself is composited
// onto the finished image by an external collaborator; this record only
// travels with the request.
type QRSettings struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
}

// Spec is the complete description of one flyer generation request. It is
// constructed once from intake data and never mutated afterwards, so
// concurrent reads are always safe.
type Spec struct {
	Category            Category       `json:"category"`
	Language            Language       `json:"language"`
	Text                TextContent    `json:"text_content"`
	Colors              ColorSettings  `json:"colors"`
	Visuals             VisualSettings `json:"visuals"`
	Output              OutputSettings `json:"output"`
	TargetAudience      string         `json:"target_audience,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	LogoPath            string         `json:"logo_path,omitempty"`
	UserPhotoPath       string         `json:"user_photo_path,omitempty"`
	ImageryDescription  string         `json:"imagery_description,omitempty"`
	QR                  *QRSettings    `json:"qr_settings,omitempty"`
}

const (
	DefaultQuality = "hd"
	DefaultModel   = "nano-banana"
)

// NewSpec constructs a Spec for the given category with every setting at its
// default value.
func NewSpec(category Category) Spec {
	spec := Spec{Category: category}
	spec.ApplyDefaults()
	return spec
}

// ApplyDefaults fills zero-valued settings with their documented defaults.
// Callers decoding a Spec from the wire should apply defaults before use.
func (s *Spec) ApplyDefaults() {
	if s.Language == "" {
		s.Language = LanguageEnglish
	}
	if s.Colors.Preset == "" {
		s.Colors.Preset = PaletteWarm
	}
	if s.Colors.BackgroundType == "" {
		s.Colors.BackgroundType = BackgroundLight
	}
	if s.Visuals.Style == "" {
		s.Visuals.Style = StyleModernMinimal
	}
	if s.Visuals.Mood == "" {
		s.Visuals.Mood = MoodFriendly
	}
	if s.Visuals.TextProminence == "" {
		s.Visuals.TextProminence = ProminenceBalanced
	}
	if s.Visuals.ImageryType == "" {
		s.Visuals.ImageryType = ImageryIllustrated
	}
	if s.Output.AspectRatio == "" {
		s.Output.AspectRatio = RatioPortrait
	}
	if s.Output.Quality == "" {
		s.Output.Quality = DefaultQuality
	}
	if s.Output.Model == "" {
		s.Output.Model = DefaultModel
	}
}
