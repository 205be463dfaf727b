// Package recommend maps free-text descriptions of a day or event to fixed
// fragrance suggestions, keyed by the user's gender preference. Matching is
// plain keyword containment against the lowercased input; the first scenario
// whose keyword appears wins.
package recommend

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/models"
)

// Scenario is one recommendation block from the static table.
type Scenario struct {
	Keywords        []string
	Title           string
	Recommendations []string
}

var table = map[models.Gender][]Scenario{
	models.GenderMale: {
		{[]string{"date", "dinner", "romantic"}, "Date Night - Masculine", []string{
			"Dior Sauvage Elixir - spicy lavender that lasts all night",
			"Creed Aventus - smoky pineapple, the classic compliment-getter",
			"Yves Saint Laurent La Nuit de L'Homme - cardamom and cedar",
			"Tom Ford Noir Extreme - warm amber with kulfi sweetness",
		}},
		{[]string{"work", "office", "meeting", "interview"}, "Office & Professional - Masculine", []string{
			"Bleu de Chanel EDP - polished citrus woods, never offensive",
			"Giorgio Armani Acqua di Gio Profumo - marine with incense depth",
			"Prada L'Homme - clean iris and amber, quietly confident",
			"Dior Homme - soft iris leather for close quarters",
		}},
		{[]string{"wedding", "formal", "gala", "funeral"}, "Formal Events - Masculine", []string{
			"Creed Aventus - celebratory and unmistakable",
			"Parfums de Marly Layton - apple, lavender and vanilla warmth",
			"Chanel Allure Homme Sport Eau Extreme - refined sporty musk",
		}},
		{[]string{"gym", "sport", "workout", "run"}, "Active & Sport - Masculine", []string{
			"Chanel Allure Homme Sport - fresh citrus with a clean drydown",
			"Versace Pour Homme - bright Mediterranean freshness",
			"Davidoff Cool Water - crisp marine classic",
		}},
		{[]string{"summer", "beach", "hot", "vacation"}, "Hot Weather - Masculine", []string{
			"Dolce & Gabbana Light Blue Pour Homme - frozen grapefruit",
			"Versace Dylan Blue - fig leaf and aquatic notes",
			"Creed Virgin Island Water - coconut lime for the beach",
		}},
		{[]string{"winter", "cold", "snow"}, "Cold Weather - Masculine", []string{
			"Spicebomb Extreme - tobacco and spices for freezing days",
			"One Million - cinnamon leather that shines in the cold",
			"Tom Ford Tobacco Vanille - dense, sweet pipe tobacco",
		}},
		{[]string{"casual", "everyday", "errand"}, "Everyday Casual - Masculine", []string{
			"Dior Sauvage EDT - bergamot and pepper, works anywhere",
			"Bleu de Chanel EDT - the definition of versatile",
			"Acqua di Gio - effortless aquatic freshness",
			"Versace Pour Homme - affordable daily freshness",
			"Prada Luna Rossa Carbon - lavender and amber, modern and clean",
		}},
	},
	models.GenderFemale: {
		{[]string{"date", "dinner", "romantic"}, "Date Night - Feminine", []string{
			"Yves Saint Laurent Black Opium - coffee and vanilla seduction",
			"Carolina Herrera Good Girl - tuberose over cocoa and tonka",
			"Lancôme La Vie Est Belle Intensément - deep iris gourmand",
			"Giorgio Armani Si Passione - rose and heliotrope warmth",
		}},
		{[]string{"work", "office", "meeting", "interview"}, "Office & Professional - Feminine", []string{
			"Chanel Coco Mademoiselle - sparkling orange and patchouli",
			"Dior J'adore - polished floral bouquet",
			"Hermès Twilly d'Hermès - ginger tuberose, modern and discreet",
			"Narciso Rodriguez For Her - soft musk that stays close",
		}},
		{[]string{"wedding", "formal", "gala", "funeral"}, "Formal Events - Feminine", []string{
			"Chanel No. 5 - timeless aldehydic elegance",
			"Viktor & Rolf Flowerbomb - explosive floral sweetness",
			"Guerlain Mon Guerlain - lavender vanilla sophistication",
		}},
		{[]string{"gym", "sport", "workout", "run"}, "Active & Sport - Feminine", []string{
			"Ralph Lauren Ralph - fresh apple and magnolia",
			"Clinique Happy - bright citrus energy",
			"Dolce & Gabbana Light Blue - crisp Sicilian lemon",
		}},
		{[]string{"summer", "beach", "hot", "vacation"}, "Hot Weather - Feminine", []string{
			"Dolce & Gabbana Light Blue - the summer benchmark",
			"Chanel Chance Eau Fraîche - green citrus lightness",
			"Escada Sorbetto Rosso - watermelon sorbet fun",
		}},
		{[]string{"winter", "cold", "snow"}, "Cold Weather - Feminine", []string{
			"Yves Saint Laurent Black Opium - radiant in cold air",
			"Thierry Mugler Alien - solar jasmine and amber",
			"Prada Candy - caramel warmth for layering season",
		}},
		{[]string{"casual", "everyday", "errand"}, "Everyday Casual - Feminine", []string{
			"Chanel Coco Mademoiselle - effortless daily polish",
			"Lancôme La Vie Est Belle - cheerful iris gourmand",
			"Marc Jacobs Daisy - easy white florals",
			"Glossier You - a your-skin-but-better musk",
			"Maison Margiela Replica Beach Walk - sunny coconut ease",
		}},
	},
	models.GenderNeutral: {
		{[]string{"date", "dinner", "romantic"}, "Date Night - Universal", []string{
			"Tom Ford Black Orchid - dark florals for any wearer",
			"Le Labo Santal 33 - creamy sandalwood with an edge",
			"Maison Francis Kurkdjian Baccarat Rouge 540 - luminous amber",
		}},
		{[]string{"work", "office", "meeting", "interview"}, "Office & Professional - Universal", []string{
			"Byredo Gypsy Water - soft pine and vanilla",
			"Jo Malone Wood Sage & Sea Salt - mineral freshness",
			"Hermès Terre d'Hermès - earthy orange, quietly assured",
		}},
		{[]string{"wedding", "formal", "gala", "funeral"}, "Formal Events - Universal", []string{
			"Creed Silver Mountain Water - crisp elegance",
			"Maison Margiela Replica By the Fireplace - chestnut warmth",
			"Diptyque Philosykos - green fig refinement",
		}},
		{[]string{"gym", "sport", "workout", "run"}, "Active & Sport - Universal", []string{
			"Jo Malone Lime Basil & Mandarin - zesty herbal lift",
			"Acqua di Parma Colonia - citrus cologne heritage",
			"CK One - the original shared fresh scent",
		}},
		{[]string{"summer", "beach", "hot", "vacation"}, "Hot Weather - Universal", []string{
			"Diptyque Philosykos - fig trees in the sun",
			"Hermès Un Jardin sur le Nil - green mango and lotus",
			"L'Occitane Verveine - sharp garden verbena",
		}},
		{[]string{"winter", "cold", "snow"}, "Cold Weather - Universal", []string{
			"Le Labo Thé Noir 29 - smoky black tea",
			"Byredo Bibliothèque - peach, plum, and old paper",
			"Diptyque Tam Dao - meditative sandalwood",
		}},
		{[]string{"casual", "everyday", "errand"}, "Everyday Casual - Universal", []string{
			"Jo Malone Wood Sage & Sea Salt - never out of place",
			"Le Labo Santal 33 - a signature for anyone",
			"CK One - wearable by design",
			"Byredo Gypsy Water - soft enough for daily wear",
			"Acqua di Parma Colonia - classic freshness",
		}},
	},
}

// ForScenario matches free text against the gender's scenario keywords in
// table order, first match wins. With no match it falls back to a versatile
// set built from the casual list's top five.
func ForScenario(gender models.Gender, text string) (Scenario, error) {
	scenarios, ok := table[gender]
	if !ok {
		return Scenario{}, fmt.Errorf("no recommendations for gender %q; set a gender preference first", gender)
	}

	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Scenario{}, fmt.Errorf("describe your day, mood, or event")
	}

	for _, s := range scenarios {
		for _, kw := range s.Keywords {
			if strings.Contains(lowered, kw) {
				return s, nil
			}
		}
	}

	casual := scenarios[len(scenarios)-1]
	recs := casual.Recommendations
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return Scenario{
		Title:           fmt.Sprintf("Versatile Fragrance Options - %s", genderLabel(gender)),
		Recommendations: recs,
	}, nil
}

func genderLabel(gender models.Gender) string {
	switch gender {
	case models.GenderMale:
		return "Masculine"
	case models.GenderFemale:
		return "Feminine"
	default:
		return "Universal"
	}
}
