package cli

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/scent"
)

type ListCmd struct {
	Tags bool `short:"t" help:"Show scent classification for each fragrance."`
}

func (c *ListCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	library := a.Library()
	if len(library) == 0 {
		fmt.Println("Your library is empty. Add a fragrance with 'scentry add <name>'.")
		return nil
	}

	fmt.Printf("Library (%d):\n", len(library))
	for i, name := range library {
		if c.Tags {
			fmt.Printf("  %d. %s %s (%s)\n", i+1, scent.VibeIcon(name), name, a.Classify(name))
		} else {
			fmt.Printf("  %d. %s %s\n", i+1, scent.VibeIcon(name), name)
		}
	}

	recent := a.Recent()
	if len(recent) > 0 {
		fmt.Println("\nRecently added:")
		for _, entry := range recent {
			fmt.Printf("  %s (%s)\n", entry.Name, entry.Timestamp.Format("Jan 2"))
		}
	}

	return nil
}
