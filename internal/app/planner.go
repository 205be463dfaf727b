package app

import (
	"time"

	"github.com/julianstephens/scentry/internal/constants"
)

// DayKey formats a date as a planner map key in the viewer's local calendar.
func DayKey(t time.Time) string {
	return t.Format(constants.DayKeyFormat)
}

// WeekDayKeys returns the 7 day keys of the week containing today, Monday
// through Sunday. Sunday belongs to the week that started 6 days earlier.
func WeekDayKeys(today time.Time) []string {
	offset := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	monday := today.AddDate(0, 0, -offset)

	keys := make([]string, 7)
	for i := range keys {
		keys[i] = DayKey(monday.AddDate(0, 0, i))
	}
	return keys
}

// Planner returns a snapshot of the day→fragrance assignment map.
func (a *App) Planner() map[string]string {
	out := make(map[string]string, len(a.planner))
	for day, name := range a.planner {
		out[day] = name
	}
	return out
}

// Assign sets the fragrance for a day, overwriting any prior assignment. The
// name must currently be in the library; the planner stores the library's
// casing, not the caller's.
func (a *App) Assign(dayKey, name string) error {
	stored, ok := a.libraryName(name)
	if !ok {
		return &NotInCatalogError{Name: name}
	}
	a.planner[dayKey] = stored
	return a.store.SavePlanner(a.planner)
}

// TodaysFragrance looks up the assignment for today's key. ok=false means
// nothing is assigned, which is a normal state.
func (a *App) TodaysFragrance(today time.Time) (string, bool) {
	name, ok := a.planner[DayKey(today)]
	return name, ok
}

// PlannedCount reports how many days have an assignment.
func (a *App) PlannedCount() int {
	return len(a.planner)
}
