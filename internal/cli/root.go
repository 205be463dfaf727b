package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/scentry/internal/app"
	"github.com/julianstephens/scentry/internal/storage"
)

type Context struct {
	Store storage.Provider
	Now   func() time.Time
}

// today returns the current time, using the injected clock when set.
func (ctx *Context) today() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}

// loadApp loads storage and builds the application state. Every command
// except init goes through here.
func loadApp(ctx *Context) (*app.App, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	return app.New(ctx.Store)
}

// resolveDayKey turns user input into a planner day key. Accepts "today",
// "tomorrow", a weekday name resolved within the current Monday-start week,
// or an explicit YYYY-MM-DD date.
func resolveDayKey(input string, today time.Time) (string, error) {
	lowered := strings.TrimSpace(strings.ToLower(input))

	switch lowered {
	case "today":
		return app.DayKey(today), nil
	case "tomorrow":
		return app.DayKey(today.AddDate(0, 0, 1)), nil
	}

	weekdays := map[string]int{
		"mon": 0, "monday": 0,
		"tue": 1, "tuesday": 1,
		"wed": 2, "wednesday": 2,
		"thu": 3, "thursday": 3,
		"fri": 4, "friday": 4,
		"sat": 5, "saturday": 5,
		"sun": 6, "sunday": 6,
	}
	if offset, ok := weekdays[lowered]; ok {
		return app.WeekDayKeys(today)[offset], nil
	}

	if t, err := time.Parse("2006-01-02", lowered); err == nil {
		return app.DayKey(t), nil
	}

	return "", fmt.Errorf("invalid day: %q (use a weekday name, a YYYY-MM-DD date, today, or tomorrow)", input)
}

// dayLabel renders a day key as "Mon Jan 2" for display, falling back to the
// raw key when it doesn't parse.
func dayLabel(dayKey string) string {
	t, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		return dayKey
	}
	return t.Format("Mon Jan 2")
}
