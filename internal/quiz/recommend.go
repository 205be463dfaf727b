package quiz

import "github.com/julianstephens/scentry/internal/models"

// GenerateRecommendations evaluates each answer key independently; matched
// values contribute one fixed block each, unmatched values contribute
// nothing. The Pro Tips block always comes last.
func GenerateRecommendations(answers map[string]string) []models.Recommendation {
	var recs []models.Recommendation

	switch answers["occasion"] {
	case "casual":
		recs = append(recs, models.Recommendation{
			Title:       "Casual Day Fragrances",
			Description: "Light, comfortable scents perfect for everyday wear. Try fresh citrus or clean aquatic notes.",
		})
	case "professional":
		recs = append(recs, models.Recommendation{
			Title:       "Professional Fragrances",
			Description: "Sophisticated and refined scents suitable for work environments. Look for clean, subtle notes.",
		})
	case "romantic":
		recs = append(recs, models.Recommendation{
			Title:       "Romantic Evening Fragrances",
			Description: "Warm, sensual scents perfect for date nights. Consider vanilla, amber, or floral notes.",
		})
	}

	switch answers["season"] {
	case "summer":
		recs = append(recs, models.Recommendation{
			Title:       "Summer Fragrances",
			Description: "Light, refreshing scents that work well in warm weather. Citrus and aquatic notes are ideal.",
		})
	case "winter":
		recs = append(recs, models.Recommendation{
			Title:       "Winter Fragrances",
			Description: "Warm, cozy scents perfect for cold weather. Look for vanilla, amber, or spicy notes.",
		})
	}

	switch answers["preference"] {
	case "fresh":
		recs = append(recs, models.Recommendation{
			Title:       "Fresh & Clean Notes",
			Description: "Citrus, aquatic, and green notes provide a clean, invigorating experience.",
		})
	case "floral":
		recs = append(recs, models.Recommendation{
			Title:       "Floral & Sweet Notes",
			Description: "Romantic flower notes and sweet vanilla create elegant, feminine scents.",
		})
	case "woody":
		recs = append(recs, models.Recommendation{
			Title:       "Woody & Earthy Notes",
			Description: "Sandalwood, vetiver, and earthy notes provide depth and sophistication.",
		})
	case "spicy":
		recs = append(recs, models.Recommendation{
			Title:       "Spicy & Warm Notes",
			Description: "Cinnamon, pepper, and warm spices create bold, attention-grabbing fragrances.",
		})
	}

	switch answers["mood"] {
	case "confident":
		recs = append(recs, models.Recommendation{
			Title:       "Confidence Boosters",
			Description: "Strong sillage and distinctive notes make an entrance. Reach for these when you want to be remembered.",
		})
	case "relaxed":
		recs = append(recs, models.Recommendation{
			Title:       "Laid-Back Scents",
			Description: "Soft musks and gentle woods keep things easy. Comfortable scents that never overpower.",
		})
	}

	recs = append(recs, models.Recommendation{
		Title:       "Pro Tips",
		Description: "Test fragrances on your skin before buying. Apply to pulse points for best longevity. Store in a cool, dark place.",
	})

	return recs
}
