package cli

import "fmt"

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	profile := a.Profile()
	fmt.Println("scentry status")
	fmt.Println()
	fmt.Printf("  Library:   %d fragrance(s)\n", len(a.Library()))
	fmt.Printf("  Wishlist:  %d entr(ies)\n", len(a.Wishlist()))
	fmt.Printf("  Planned:   %d day(s)\n", a.PlannedCount())

	if name, ok := a.TodaysFragrance(ctx.today()); ok {
		fmt.Printf("  Today:     %s\n", name)
	} else {
		fmt.Println("  Today:     nothing planned")
	}

	if profile.OnboardingComplete {
		fmt.Printf("  Profile:   %s (theme %s)\n", profile.Gender, profile.Theme)
	} else {
		fmt.Println("  Profile:   not set up, run 'scentry profile gender <male|female|neutral>'")
	}
	if profile.QuestionnaireComplete {
		fmt.Println("  Quiz:      complete")
	} else {
		fmt.Println("  Quiz:      not taken, run 'scentry quiz'")
	}

	insight := a.Insight()
	if insight.Suggestion != "" {
		fmt.Printf("\n  %s\n", insight.Suggestion)
	}

	return nil
}
