package flyer

// CategoryTextFields lists which text fields are relevant for each category.
// Intake surfaces use it to decide which prompts to show; it never affects
// prompt assembly.
var CategoryTextFields = map[Category][]string{
	CategoryEvent:            {"headline", "subheadline", "date", "venue_name", "address", "cta_text", "website"},
	CategorySalePromo:        {"headline", "subheadline", "discount_text", "date", "address", "cta_text", "fine_print", "website"},
	CategoryAnnouncement:     {"headline", "subheadline", "body_text", "date", "cta_text"},
	CategoryRestaurantFood:   {"headline", "subheadline", "venue_name", "address", "phone", "website", "price", "cta_text"},
	CategoryRealEstate:       {"headline", "price", "address", "body_text", "phone", "email", "website"},
	CategoryJobPosting:       {"headline", "subheadline", "body_text", "cta_text", "email", "website"},
	CategoryClassWorkshop:    {"headline", "subheadline", "date", "venue_name", "price", "cta_text"},
	CategoryGrandOpening:     {"headline", "subheadline", "body_text", "date", "time", "venue_name", "address", "discount_text", "cta_text", "phone", "website"},
	CategoryPartyCelebration: {"headline", "subheadline", "date", "time", "venue_name", "address", "cta_text", "phone"},
	CategoryFitnessWellness:  {"headline", "subheadline", "date", "time", "venue_name", "address", "price", "discount_text", "cta_text", "phone"},
	CategoryNonprofitCharity: {"headline", "subheadline", "body_text", "date", "time", "venue_name", "address", "cta_text", "phone", "email", "website"},
	CategoryMusicConcert:     {"headline", "subheadline", "date", "time", "venue_name", "address", "price", "cta_text", "website"},
}

// CategorySuggestedElements lists visual elements commonly paired with each
// category, surfaced as suggestions during intake.
var CategorySuggestedElements = map[Category][]string{
	CategoryEvent:            {"decorative borders", "event-themed graphics"},
	CategorySalePromo:        {"sale tags", "burst shapes", "percentage badges", "shopping bags"},
	CategoryRestaurantFood:   {"food imagery", "utensils", "plate arrangements"},
	CategoryRealEstate:       {"property silhouette", "key motifs", "house icons"},
	CategoryJobPosting:       {"professional icons", "growth arrows", "team silhouettes"},
	CategoryClassWorkshop:    {"learning icons", "notebook motifs", "lightbulb"},
	CategoryGrandOpening:     {"ribbon cutting", "celebration confetti", "grand banner"},
	CategoryPartyCelebration: {"balloons", "confetti", "party decorations"},
	CategoryFitnessWellness:  {"fitness silhouettes", "wellness symbols", "nature elements"},
	CategoryNonprofitCharity: {"helping hands", "heart motifs", "community symbols"},
	CategoryMusicConcert:     {"musical notes", "instruments", "sound waves", "stage lights"},
}
