package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/pricing"
)

// ConflictType represents the type of detected state inconsistency
type ConflictType string

const (
	ConflictDuplicateFragrance ConflictType = "duplicate_fragrance"
	ConflictPlannerOrphan      ConflictType = "planner_orphan"
	ConflictRecentOrphan       ConflictType = "recent_orphan"
	ConflictWishlistUnpriced   ConflictType = "wishlist_unpriced"
	ConflictInvalidDayKey      ConflictType = "invalid_day_key"
	ConflictEmptyName          ConflictType = "empty_name"
)

// Conflict represents a detected inconsistency between collections
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Fragrance names or day keys involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction describes an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// State bundles the collections a Validator checks against each other.
type State struct {
	Library  []string
	Wishlist []models.WishlistEntry
	Planner  map[string]string
	Recent   []models.RecentEntry
}

// Validator checks stored collections for cross-collection consistency
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate checks all collections for conflicts. Library membership is
// case-insensitive everywhere, matching how removal cascades behave.
func (v *Validator) Validate(state State) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	// Duplicate or empty names within the library
	seen := make(map[string][]string)
	for _, name := range state.Library {
		if strings.TrimSpace(name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyName,
				Description: "Library contains an empty fragrance name",
			})
			continue
		}
		key := strings.ToLower(name)
		seen[key] = append(seen[key], name)
	}

	// Sort keys so the report is stable across runs
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if names := seen[key]; len(names) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateFragrance,
				Description: fmt.Sprintf("Duplicate fragrance in library: %v", names),
				Items:       names,
			})
		}
	}

	inLibrary := func(name string) bool {
		for _, have := range state.Library {
			if strings.EqualFold(have, name) {
				return true
			}
		}
		return false
	}

	// Planner entries must reference library fragrances and valid day keys
	days := make([]string, 0, len(state.Planner))
	for day := range state.Planner {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		name := state.Planner[day]
		if _, err := time.Parse(constants.DayKeyFormat, day); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDayKey,
				Description: fmt.Sprintf("Planner has invalid day key: %q", day),
				Items:       []string{day},
			})
		}
		if !inLibrary(name) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictPlannerOrphan,
				Description: fmt.Sprintf("%s: planned fragrance %q is not in the library", day, name),
				Items:       []string{day, name},
			})
		}
	}

	// Recent entries should still exist in the library
	for _, entry := range state.Recent {
		if !inLibrary(entry.Name) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictRecentOrphan,
				Description: fmt.Sprintf("Recently added fragrance %q is not in the library", entry.Name),
				Items:       []string{entry.Name},
			})
		}
	}

	// Wishlist entries without price data can't show deals. Not an error,
	// but worth surfacing so the user knows why a lookup comes up empty.
	for _, entry := range state.Wishlist {
		if _, ok := pricing.Lookup(entry.Name); !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictWishlistUnpriced,
				Description: fmt.Sprintf("Wishlist fragrance %q has no price data", entry.Name),
				Items:       []string{entry.Name},
			})
		}
	}

	return result
}

// AutoFix repairs the conflicts that have a safe mechanical fix: duplicate
// library names collapse to their first occurrence, and planner or recent
// entries that reference a missing fragrance are dropped. Unpriced wishlist
// entries are left alone. Returns the repaired state and the actions taken.
func AutoFix(conflicts []Conflict, state State) (State, []FixAction) {
	actions := []FixAction{}

	for _, conflict := range conflicts {
		switch conflict.Type {
		case ConflictDuplicateFragrance:
			kept := false
			deduped := state.Library[:0:0]
			var removed []string
			for _, name := range state.Library {
				if strings.EqualFold(name, conflict.Items[0]) {
					if kept {
						removed = append(removed, name)
						continue
					}
					kept = true
				}
				deduped = append(deduped, name)
			}
			if len(removed) > 0 {
				state.Library = deduped
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Removed %d duplicate(s) of %q from library (kept first occurrence)", len(removed), conflict.Items[0]),
					SourceConflict: conflict,
				})
			}

		case ConflictPlannerOrphan:
			day := conflict.Items[0]
			if name, ok := state.Planner[day]; ok {
				delete(state.Planner, day)
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Cleared %s from the planner (%q is no longer in the library)", day, name),
					SourceConflict: conflict,
				})
			}

		case ConflictRecentOrphan:
			name := conflict.Items[0]
			filtered := state.Recent[:0:0]
			dropped := 0
			for _, entry := range state.Recent {
				if strings.EqualFold(entry.Name, name) {
					dropped++
					continue
				}
				filtered = append(filtered, entry)
			}
			if dropped > 0 {
				state.Recent = filtered
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Removed %q from the recently added list", name),
					SourceConflict: conflict,
				})
			}
		}
	}

	return state, actions
}
