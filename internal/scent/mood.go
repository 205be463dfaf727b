package scent

import "strings"

// SuggestionKind says how a mood suggestion was found.
type SuggestionKind int

const (
	// SuggestionNone means the library is empty; there is nothing to suggest.
	SuggestionNone SuggestionKind = iota
	// SuggestionMood means a mood category matched and a library name hit its
	// vocabulary.
	SuggestionMood
	// SuggestionKeyword means no mood hit, but a raw input token appears in a
	// library name.
	SuggestionKeyword
	// SuggestionVersatile means nothing matched; the first library entry is
	// offered as the most versatile pick.
	SuggestionVersatile
)

type moodEntry struct {
	mood  string
	words []string
}

// moodVocab is checked in order; the first mood with a vocabulary hit wins.
// This table is separate from the scent-tag vocabulary above on purpose: mood
// words describe occasions ("date", "office"), not notes.
var moodVocab = []moodEntry{
	{"romantic", []string{"romantic", "date", "love", "night", "evening", "passion", "intimate"}},
	{"work", []string{"work", "office", "professional", "meeting", "business", "formal"}},
	{"fresh", []string{"fresh", "clean", "aqua", "water", "mint", "citrus", "green", "morning", "crisp", "ocean", "breeze"}},
	{"warm", []string{"warm", "cozy", "vanilla", "amber", "spice", "winter", "sweet", "comfort"}},
	{"energetic", []string{"energetic", "sport", "active", "zest", "vibrant", "summer", "uplifting"}},
	{"floral", []string{"floral", "flower", "rose", "jasmine", "bloom", "petal", "garden"}},
	{"woody", []string{"woody", "wood", "cedar", "oud", "sandal", "forest", "earthy"}},
	{"fruity", []string{"fruity", "fruit", "berry", "peach", "apple", "melon", "coconut", "juicy"}},
	{"musky", []string{"musky", "musk", "leather", "animal", "suede", "deep"}},
	{"powdery", []string{"powdery", "powder", "iris", "soft", "clean", "gentle"}},
	{"adventurous", []string{"adventure", "adventurous", "explore", "bold", "unique", "mystery"}},
	{"relaxed", []string{"relaxed", "chill", "calm", "laid-back", "easygoing", "peaceful"}},
	{"rainy", []string{"rain", "rainy", "storm", "cloudy", "wet", "cool"}},
	{"party", []string{"party", "fun", "celebrate", "night out", "clubbing", "festive"}},
}

// MoodSuggestion picks a library fragrance for a free-text mood. Matching is
// two-pass: substring anywhere in the input first, then whole input tokens.
// The matched mood's vocabulary is then searched against library names; with
// no hit anywhere the first library entry stands in as the versatile fallback.
func MoodSuggestion(library []string, moodText string) (string, SuggestionKind) {
	if len(library) == 0 {
		return "", SuggestionNone
	}

	mood := strings.ToLower(strings.TrimSpace(moodText))
	tokens := strings.Fields(mood)

	var matched *moodEntry
	for i := range moodVocab {
		if containsAny(mood, moodVocab[i].words) {
			matched = &moodVocab[i]
			break
		}
	}
	if matched == nil {
		for i := range moodVocab {
			if tokenHit(tokens, moodVocab[i].words) {
				matched = &moodVocab[i]
				break
			}
		}
	}

	if matched != nil {
		for _, name := range library {
			if containsAny(strings.ToLower(name), matched.words) {
				return name, SuggestionMood
			}
		}
	}

	// No mood match (or the mood had no library hits): try the raw tokens.
	for _, name := range library {
		lower := strings.ToLower(name)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				return name, SuggestionKeyword
			}
		}
	}

	return library[0], SuggestionVersatile
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func tokenHit(tokens, words []string) bool {
	for _, w := range words {
		for _, tok := range tokens {
			if tok == w {
				return true
			}
		}
	}
	return false
}
