package app

import (
	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
)

// Profile returns the current user profile.
func (a *App) Profile() models.Profile {
	return a.profile
}

// SetGender records the gender preference and, as in onboarding, aligns the
// theme with it.
func (a *App) SetGender(gender models.Gender) error {
	a.profile.Gender = gender
	a.profile.Theme = string(gender)
	a.profile.OnboardingComplete = true
	return a.store.SaveProfile(a.profile)
}

// SetTheme records the UI theme name.
func (a *App) SetTheme(theme string) error {
	a.profile.Theme = theme
	return a.store.SaveProfile(a.profile)
}

// CycleTheme advances neutral → male → female → neutral and returns the new
// theme name.
func (a *App) CycleTheme() (string, error) {
	order := []string{constants.DefaultTheme, string(models.GenderMale), string(models.GenderFemale)}
	next := order[0]
	for i, theme := range order {
		if theme == a.profile.Theme {
			next = order[(i+1)%len(order)]
			break
		}
	}
	a.profile.Theme = next
	return next, a.store.SaveProfile(a.profile)
}

// MarkQuestionnaireComplete flags the questionnaire as finished.
func (a *App) MarkQuestionnaireComplete() error {
	a.profile.QuestionnaireComplete = true
	return a.store.SaveProfile(a.profile)
}

// ResetPreferences clears the profile and saved quiz answers but keeps the
// library, wishlist, and planner intact.
func (a *App) ResetPreferences() error {
	a.profile = models.Profile{Theme: constants.DefaultTheme}
	if err := a.store.SaveAnswers(map[string]string{}); err != nil {
		return err
	}
	return a.store.SaveProfile(a.profile)
}
