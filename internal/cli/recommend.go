package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/recommend"
)

type RecommendCmd struct {
	Scenario []string `arg:"" help:"Describe your day, mood, or event."`
}

func (c *RecommendCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	profile := a.Profile()
	if !profile.OnboardingComplete {
		return fmt.Errorf("set a gender preference first with 'scentry profile gender <male|female|neutral>'")
	}

	scenario, err := recommend.ForScenario(profile.Gender, strings.Join(c.Scenario, " "))
	if err != nil {
		return err
	}

	fmt.Println(scenario.Title)
	for _, rec := range scenario.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	return nil
}
