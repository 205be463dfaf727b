package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/scent"
)

type SuggestCmd struct {
	Mood []string `arg:"" help:"How you're feeling or what you're up to."`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	mood := strings.Join(c.Mood, " ")
	name, kind := a.SuggestForMood(mood)

	switch kind {
	case scent.SuggestionNone:
		fmt.Println("Your library is empty. Add a fragrance first with 'scentry add <name>'.")
	case scent.SuggestionMood:
		fmt.Printf("For that mood, wear %s %s\n", scent.VibeIcon(name), name)
	case scent.SuggestionKeyword:
		fmt.Printf("%s %s sounds like a match\n", scent.VibeIcon(name), name)
	case scent.SuggestionVersatile:
		fmt.Printf("No direct match, but %s %s works for anything\n", scent.VibeIcon(name), name)
	}
	return nil
}
