package app

import (
	"strings"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/scent"
)

// Library returns a snapshot of the fragrance library in insertion order.
func (a *App) Library() []string {
	out := make([]string, len(a.library))
	copy(out, a.library)
	return out
}

// Recent returns the recently-added list, newest first.
func (a *App) Recent() []models.RecentEntry {
	out := make([]models.RecentEntry, len(a.recent))
	copy(out, a.recent)
	return out
}

// AddFragrance appends a fragrance to the library, preserving the given
// casing but rejecting case-insensitive duplicates. The recently-added list
// is updated alongside. Returns the stored name.
func (a *App) AddFragrance(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Reason: "fragrance name must not be empty"}
	}
	for _, existing := range a.library {
		if strings.EqualFold(existing, name) {
			return "", &DuplicateError{Name: name}
		}
	}

	a.library = append(a.library, name)
	a.pushRecent(name)

	if err := a.store.SaveLibrary(a.library); err != nil {
		return "", err
	}
	if err := a.store.SaveRecent(a.recent); err != nil {
		return "", err
	}
	return name, nil
}

// RemoveFragrance deletes the library entry at index and cascades: planner
// assignments and recent entries for that name go with it. Name matching for
// the cascade is case-insensitive, same as library uniqueness. All three
// collections are persisted before returning. Returns the removed name.
func (a *App) RemoveFragrance(index int) (string, error) {
	if index < 0 || index >= len(a.library) {
		return "", &IndexError{Index: index, Length: len(a.library)}
	}

	removed := a.library[index]
	a.library = append(a.library[:index], a.library[index+1:]...)

	for day, assigned := range a.planner {
		if strings.EqualFold(assigned, removed) {
			delete(a.planner, day)
		}
	}

	kept := a.recent[:0]
	for _, entry := range a.recent {
		if !strings.EqualFold(entry.Name, removed) {
			kept = append(kept, entry)
		}
	}
	a.recent = kept

	if err := a.store.SaveLibrary(a.library); err != nil {
		return "", err
	}
	if err := a.store.SavePlanner(a.planner); err != nil {
		return "", err
	}
	if err := a.store.SaveRecent(a.recent); err != nil {
		return "", err
	}
	return removed, nil
}

// HasFragrance reports whether name is in the library, case-insensitively.
func (a *App) HasFragrance(name string) bool {
	_, ok := a.libraryName(name)
	return ok
}

// libraryName resolves a case-insensitive lookup to the stored spelling.
func (a *App) libraryName(name string) (string, bool) {
	for _, existing := range a.library {
		if strings.EqualFold(existing, name) {
			return existing, true
		}
	}
	return "", false
}

// Classify returns the scent tag for a library entry (or any name).
func (a *App) Classify(name string) scent.Tag {
	return scent.Classify(name)
}

// pushRecent moves name to the front of the recent list, evicting any prior
// entry with the same name and truncating to the cap.
func (a *App) pushRecent(name string) {
	kept := make([]models.RecentEntry, 0, len(a.recent)+1)
	kept = append(kept, models.RecentEntry{Name: name, Timestamp: a.now()})
	for _, entry := range a.recent {
		if !strings.EqualFold(entry.Name, name) {
			kept = append(kept, entry)
		}
	}
	if len(kept) > constants.RecentListMax {
		kept = kept[:constants.RecentListMax]
	}
	a.recent = kept
}

// Insight summarizes the library's scent profile.
func (a *App) Insight() scent.Insight {
	return scent.NewEngine().LibraryInsight(a.library)
}

// SuggestForMood picks a library fragrance matching the described mood.
func (a *App) SuggestForMood(moodText string) (string, scent.SuggestionKind) {
	return scent.MoodSuggestion(a.library, moodText)
}
