package quiz

import "github.com/julianstephens/scentry/internal/models"

// Questions is the fixed questionnaire sequence. IDs are stable: stored
// answers are keyed by them and the recommendation rules match on them.
var Questions = []models.Question{
	{
		ID:       "occasion",
		Title:    "When do you usually wear fragrance?",
		Subtitle: "Pick the occasion you reach for a scent most often.",
		Options: []models.Option{
			{Value: "casual", Label: "Everyday casual", Description: "Errands, hanging out, daily wear"},
			{Value: "professional", Label: "Work & professional", Description: "Office, meetings, client-facing days"},
			{Value: "romantic", Label: "Dates & evenings", Description: "Dinners, date nights, special evenings"},
			{Value: "special", Label: "Special events", Description: "Weddings, parties, celebrations"},
		},
	},
	{
		ID:       "season",
		Title:    "Which season do you shop for?",
		Subtitle: "Scents behave differently in heat and cold.",
		Options: []models.Option{
			{Value: "summer", Label: "Summer", Description: "Hot days, light clothing, outdoor time"},
			{Value: "winter", Label: "Winter", Description: "Cold air, layers, cozy indoors"},
			{Value: "spring", Label: "Spring", Description: "Mild days, fresh blooms"},
			{Value: "autumn", Label: "Autumn", Description: "Crisp air, warm tones"},
		},
	},
	{
		ID:       "mood",
		Title:    "What mood should your fragrance set?",
		Subtitle: "The feeling you want people to notice.",
		Options: []models.Option{
			{Value: "confident", Label: "Confident", Description: "Bold, memorable, attention-grabbing"},
			{Value: "relaxed", Label: "Relaxed", Description: "Easygoing, comfortable, approachable"},
			{Value: "elegant", Label: "Elegant", Description: "Refined, polished, understated"},
			{Value: "playful", Label: "Playful", Description: "Fun, bright, youthful"},
		},
	},
	{
		ID:       "preference",
		Title:    "Which notes do you gravitate toward?",
		Subtitle: "The family of smells you enjoy most.",
		Options: []models.Option{
			{Value: "fresh", Label: "Fresh & clean", Description: "Citrus, aquatic, green notes"},
			{Value: "floral", Label: "Floral & sweet", Description: "Rose, jasmine, vanilla"},
			{Value: "woody", Label: "Woody & earthy", Description: "Sandalwood, vetiver, oud"},
			{Value: "spicy", Label: "Spicy & warm", Description: "Cinnamon, pepper, amber"},
		},
	},
	{
		ID:       "intensity",
		Title:    "How strong should it be?",
		Subtitle: "Projection and longevity preference.",
		Options: []models.Option{
			{Value: "subtle", Label: "Subtle", Description: "A skin scent only close people notice"},
			{Value: "moderate", Label: "Moderate", Description: "Noticeable at arm's length"},
			{Value: "strong", Label: "Strong", Description: "Fills a room, lasts all day"},
			{Value: "varies", Label: "Depends on the day", Description: "Different strengths for different occasions"},
		},
	},
}

func questionByID(id string) (models.Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
