package cli

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/app"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	today := ctx.today()
	todayKey := app.DayKey(today)
	planner := a.Planner()

	fmt.Println("This week:")
	for _, dayKey := range app.WeekDayKeys(today) {
		marker := " "
		if dayKey == todayKey {
			marker = ">"
		}
		name, ok := planner[dayKey]
		if !ok {
			name = "-"
		}
		fmt.Printf(" %s %-10s %s\n", marker, dayLabel(dayKey), name)
	}
	return nil
}
