package cli

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/models"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	profile := a.Profile()
	if !profile.OnboardingComplete {
		fmt.Println("No profile yet. Set one with 'scentry profile gender <male|female|neutral>'.")
		return nil
	}

	fmt.Printf("Gender preference: %s\n", profile.Gender)
	fmt.Printf("Theme:             %s\n", profile.Theme)
	if profile.QuestionnaireComplete {
		fmt.Println("Quiz:              complete")
	} else {
		fmt.Println("Quiz:              not taken")
	}
	return nil
}

type ProfileGenderCmd struct {
	Gender string `arg:"" help:"Gender preference (male|female|neutral)."`
}

func (c *ProfileGenderCmd) Run(ctx *Context) error {
	gender, ok := models.ParseGender(c.Gender)
	if !ok {
		return fmt.Errorf("invalid gender preference: %q (use male, female, or neutral)", c.Gender)
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	if err := a.SetGender(gender); err != nil {
		return err
	}
	fmt.Printf("Gender preference set to %s (theme follows)\n", gender)
	return nil
}

type ProfileThemeCmd struct {
	Theme string `arg:"" optional:"" help:"Theme to switch to (male|female|neutral). Omit to cycle."`
}

func (c *ProfileThemeCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	if c.Theme == "" {
		next, err := a.CycleTheme()
		if err != nil {
			return err
		}
		fmt.Printf("Theme is now %s\n", next)
		return nil
	}

	if _, ok := models.ParseGender(c.Theme); !ok {
		return fmt.Errorf("invalid theme: %q (use male, female, or neutral)", c.Theme)
	}
	if err := a.SetTheme(c.Theme); err != nil {
		return err
	}
	fmt.Printf("Theme is now %s\n", c.Theme)
	return nil
}
