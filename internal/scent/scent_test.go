package scent

import (
	"math/rand"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Tag
	}{
		{"Rose Petal Dream", TagFloral},
		{"Cedar Woods", TagWoody},
		{"Vanilla Sky", TagSweet},
		{"Aqua Marine", TagFresh},
		{"Pepper Punch", TagSpicy},
		{"White Musk", TagMusky},
		{"Green Apple", TagFresh}, // "green" hits Fresh before Fruity sees "apple"
		{"Berry Blast", TagFruity},
		{"Iris Powder", TagPowdery},
		{"Enigma", TagVersatile},
		{"MIDNIGHT ROSE", TagFloral}, // case-insensitive
	}

	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Contains floral ("rose"), woody ("oud"), and musky vocabulary; Floral
	// is checked first.
	if got := Classify("Midnight Rose Oud"); got != TagFloral {
		t.Errorf("Classify = %s, want Floral", got)
	}
}

func TestVibeIcon(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Rose Garden", "🌸"},
		{"Oud Royale", "🌿"},
		{"Ocean Drive", "🌊"},
		{"Midnight Special", "🌙"},
		{"Nameless", "🌟"},
	}

	for _, tt := range tests {
		if got := VibeIcon(tt.name); got != tt.want {
			t.Errorf("VibeIcon(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestMoodSuggestion_EmptyLibrary(t *testing.T) {
	name, kind := MoodSuggestion(nil, "fresh morning")
	if name != "" || kind != SuggestionNone {
		t.Errorf("Expected empty suggestion, got %q/%v", name, kind)
	}
}

func TestMoodSuggestion_MoodMatch(t *testing.T) {
	library := []string{"Vanilla Dream", "Ocean Breeze", "Rose Garden"}

	name, kind := MoodSuggestion(library, "I want something fresh today")
	if kind != SuggestionMood {
		t.Fatalf("Expected mood match, got %v", kind)
	}
	if name != "Ocean Breeze" {
		t.Errorf("Suggested %q, want Ocean Breeze", name)
	}
}

func TestMoodSuggestion_TokenPass(t *testing.T) {
	library := []string{"Cozy Amber"}

	// "warm" matches the warm mood, whose vocabulary includes "cozy"
	name, kind := MoodSuggestion(library, "warm")
	if kind != SuggestionMood || name != "Cozy Amber" {
		t.Errorf("Got %q/%v, want Cozy Amber via mood match", name, kind)
	}
}

func TestMoodSuggestion_KeywordFallback(t *testing.T) {
	library := []string{"Rose Garden", "Tobacco Haze"}

	// No mood vocabulary contains "tobacco"; the raw token matches a name.
	name, kind := MoodSuggestion(library, "tobacco")
	if kind != SuggestionKeyword {
		t.Fatalf("Expected keyword fallback, got %v", kind)
	}
	if name != "Tobacco Haze" {
		t.Errorf("Suggested %q, want Tobacco Haze", name)
	}
}

func TestMoodSuggestion_VersatileFallback(t *testing.T) {
	library := []string{"Enigma", "Paradox"}

	name, kind := MoodSuggestion(library, "xyzzy")
	if kind != SuggestionVersatile {
		t.Fatalf("Expected versatile fallback, got %v", kind)
	}
	if name != "Enigma" {
		t.Errorf("Fallback should be the first library entry, got %q", name)
	}
}

func TestLibraryInsight_EmptyOrUnclassified(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))

	for _, library := range [][]string{nil, {"Enigma", "Paradox"}} {
		insight := engine.LibraryInsight(library)
		if insight.MostCommon != "" {
			t.Errorf("MostCommon = %q, want empty", insight.MostCommon)
		}
		if !strings.Contains(insight.Suggestion, "unique") {
			t.Errorf("Unexpected suggestion: %q", insight.Suggestion)
		}
	}
}

func TestLibraryInsight_MissingTag(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(42))

	insight := engine.LibraryInsight([]string{"Rose Garden", "Jasmine Noir", "Cedar Woods"})
	if insight.MostCommon != TagFloral {
		t.Errorf("MostCommon = %s, want Floral", insight.MostCommon)
	}
	if len(insight.Missing) == 0 {
		t.Fatal("Expected missing tags")
	}
	if !strings.Contains(insight.Suggestion, "mostly Floral") {
		t.Errorf("Unexpected suggestion: %q", insight.Suggestion)
	}
}

func TestLibraryInsight_FirstMaxTieBreak(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))

	// One Floral, one Woody: the tie goes to the tag earlier in priority
	// order, which is Floral.
	insight := engine.LibraryInsight([]string{"Cedar Woods", "Rose Garden"})
	if insight.MostCommon != TagFloral {
		t.Errorf("Tie should break to Floral, got %s", insight.MostCommon)
	}
}

func TestLibraryInsight_WellRounded(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))

	library := []string{
		"Rose Garden",   // Floral
		"Rose Bloom",    // Floral
		"Cedar Woods",   // Woody
		"Vanilla Sky",   // Sweet
		"Aqua Marine",   // Fresh
		"Pepper Punch",  // Spicy
		"White Musk",    // Musky
		"Berry Blast",   // Fruity
		"Powder Room",   // Powdery
	}

	insight := engine.LibraryInsight(library)
	if len(insight.Missing) != 0 {
		t.Fatalf("Expected no missing tags, got %v", insight.Missing)
	}
	if insight.MostCommon != TagFloral {
		t.Errorf("MostCommon = %s, want Floral", insight.MostCommon)
	}
	if !strings.Contains(insight.Suggestion, "well-rounded") {
		t.Errorf("Unexpected suggestion: %q", insight.Suggestion)
	}
}
