package cli

import (
	"fmt"
	"strings"
)

type AssignCmd struct {
	Day  string   `arg:"" help:"Day to plan (weekday name, YYYY-MM-DD, today, or tomorrow)."`
	Name []string `arg:"" help:"Fragrance from your library."`
}

func (c *AssignCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	dayKey, err := resolveDayKey(c.Day, ctx.today())
	if err != nil {
		return err
	}

	name := strings.Join(c.Name, " ")
	if err := a.Assign(dayKey, name); err != nil {
		return err
	}

	fmt.Printf("Planned %s for %s\n", name, dayLabel(dayKey))
	return nil
}
