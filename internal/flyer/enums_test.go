package flyer

import "testing"

func TestKnownMembership(t *testing.T) {
	if !CategorySalePromo.Known() {
		t.Fatalf("sale_promo should be known")
	}
	if Category("garage_sale").Known() {
		t.Fatalf("garage_sale should be unknown")
	}
	if !RatioA4.Known() {
		t.Fatalf("a4 should be known")
	}
	if AspectRatio("A4").Known() {
		t.Fatalf("aspect ratio values are case-sensitive")
	}
}

func TestDisplayNames(t *testing.T) {
	if got := CategorySalePromo.DisplayName(); got != "Sale / Promotion" {
		t.Fatalf("sale_promo display name = %q", got)
	}
	if got := StyleModernMinimal.DisplayName(); got != "Modern Minimal" {
		t.Fatalf("modern_minimal display name = %q", got)
	}
	if got := LanguageSpanish.DisplayName(); got != "Español (Spanish)" {
		t.Fatalf("spanish display name = %q", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	spec := Spec{Category: CategoryEvent}
	spec.ApplyDefaults()
	if spec.Language != LanguageEnglish {
		t.Fatalf("language = %q", spec.Language)
	}
	if spec.Colors.Preset != PaletteWarm || spec.Colors.BackgroundType != BackgroundLight {
		t.Fatalf("color defaults = %+v", spec.Colors)
	}
	if spec.Visuals.Style != StyleModernMinimal || spec.Visuals.Mood != MoodFriendly {
		t.Fatalf("visual defaults = %+v", spec.Visuals)
	}
	if spec.Output.AspectRatio != RatioPortrait || spec.Output.Quality != DefaultQuality || spec.Output.Model != DefaultModel {
		t.Fatalf("output defaults = %+v", spec.Output)
	}
}

func TestApplyDefaultsPreservesExplicitChoices(t *testing.T) {
	spec := NewSpec(CategoryEvent)
	spec.Output.Model = "dall-e-3"
	spec.Visuals.Mood = MoodElegant
	spec.ApplyDefaults()
	if spec.Output.Model != "dall-e-3" || spec.Visuals.Mood != MoodElegant {
		t.Fatalf("explicit choices overwritten: %+v", spec)
	}
}

func TestAxisSlicesMatchVocabulary(t *testing.T) {
	if got := len(AllCategories()); got != 12 {
		t.Fatalf("category count = %d, want 12", got)
	}
	if got := len(AllVisualStyles()); got != 10 {
		t.Fatalf("style count = %d, want 10", got)
	}
	if got := len(AllMoods()); got != 10 {
		t.Fatalf("mood count = %d, want 10", got)
	}
	if got := len(AllAspectRatios()); got != 6 {
		t.Fatalf("aspect ratio count = %d, want 6", got)
	}
	if got := len(AllPalettePresets()); got != 8 {
		t.Fatalf("palette count = %d, want 8", got)
	}
	if got := len(AllLanguages()); got != 5 {
		t.Fatalf("language count = %d, want 5", got)
	}
	for _, c := range AllCategories() {
		if !c.Known() {
			t.Fatalf("category %q not recognized by Known", c)
		}
	}
}
