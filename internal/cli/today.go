package cli

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/scent"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	name, ok := a.TodaysFragrance(ctx.today())
	if !ok {
		fmt.Println("Nothing planned for today. Assign one with 'scentry assign today <name>'.")
		return nil
	}

	fmt.Printf("Today: %s %s (%s)\n", scent.VibeIcon(name), name, a.Classify(name))
	return nil
}
