package models

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
	GenderUnset   Gender = ""
)

// Profile holds ambient user preferences and onboarding state.
type Profile struct {
	Gender                Gender `json:"gender"`
	Theme                 string `json:"theme"`
	OnboardingComplete    bool   `json:"onboarding_complete"`
	QuestionnaireComplete bool   `json:"questionnaire_complete"`
}

// ParseGender maps user input to a Gender, returning false for anything
// outside the fixed set.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderNeutral:
		return Gender(s), true
	default:
		return GenderUnset, false
	}
}
