package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/i4ali/flygen/internal/flyer"
	"github.com/i4ali/flygen/internal/infra"
	"github.com/i4ali/flygen/internal/prompt"
	"github.com/i4ali/flygen/internal/providers/image"
	"github.com/i4ali/flygen/internal/storage"
)

// demo assembles a sample sale-promo flyer, prints the resulting prompts and
// runs the mock backend so the full pipeline can be exercised offline.
func main() {
	logger := infra.NewLogger("development")

	if err := prompt.ValidateTables(); err != nil {
		logger.Fatal().Err(err).Msg("prompt tables are incomplete")
	}

	spec := flyer.NewSpec(flyer.CategorySalePromo)
	spec.Text = flyer.TextContent{
		Headline:       "MEGA WEEKEND SALE",
		Subheadline:    "Everything Must Go",
		Date:           "December 14-15",
		Time:           "10 AM - 8 PM",
		VenueName:      "MegaStore",
		Address:        "123 Main Street, Downtown",
		DiscountText:   "UP TO 70% OFF",
		CTAText:        "Shop Now!",
		Website:        "www.megastore.com",
		AdditionalInfo: []string{"Free parking", "Refreshments available"},
		FinePrint:      "While supplies last. Some exclusions apply.",
	}
	spec.Colors.Preset = flyer.PaletteWarm
	spec.Colors.PrimaryColor = "red"
	spec.Colors.AccentColor = "yellow"
	spec.Colors.BackgroundType = flyer.BackgroundLight
	spec.Visuals.Style = flyer.StyleBoldVibrant
	spec.Visuals.Mood = flyer.MoodUrgent
	spec.Visuals.TextProminence = flyer.ProminenceDominant
	spec.Visuals.ImageryType = flyer.ImageryIllustrated
	spec.Visuals.IncludeElements = []string{"sale tags", "shopping bags", "burst shapes"}
	spec.Visuals.AvoidElements = []string{"people faces", "stock photo feel"}
	spec.Output.AspectRatio = flyer.RatioPortrait
	spec.Output.Quality = "hd"
	spec.Output.Model = "gpt-image-1"
	spec.TargetAudience = "bargain hunters and families"
	spec.SpecialInstructions = "Instagram post and print flyer for storefront"

	pkg, err := prompt.Assemble(spec)
	if err != nil {
		logger.Fatal().Err(err).Msg("prompt assembly failed")
	}

	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Println("MAIN PROMPT:")
	fmt.Println(rule)
	fmt.Println(pkg.MainPrompt)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println("NEGATIVE PROMPT:")
	fmt.Println(rule)
	fmt.Println(pkg.NegativePrompt)
	fmt.Println()
	fmt.Printf("Aspect Ratio: %s\n", pkg.AspectRatio)
	fmt.Printf("Model: %s\n", pkg.Model)
	fmt.Printf("Quality: %s\n", pkg.Quality)

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}
	store, err := storage.NewFileStore(outputDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare output directory")
	}

	mock := image.NewMock(store, &logger)
	results := mock.Generate(context.Background(), image.Request{
		Prompt:         pkg.MainPrompt,
		NegativePrompt: pkg.NegativePrompt,
		Model:          pkg.Model,
		AspectRatio:    pkg.AspectRatio,
		Quality:        pkg.Quality,
		Count:          1,
	})
	for _, result := range results {
		fmt.Println()
		fmt.Printf("Mock run: success=%t path=%s\n", result.Success, result.ImagePath)
	}

	reformat, err := prompt.ReformatPrompt(flyer.RatioLandscape)
	if err != nil {
		logger.Fatal().Err(err).Msg("reformat prompt failed")
	}
	fmt.Println()
	fmt.Println("Reformat instruction (16:9):")
	fmt.Println(reformat)
}
