package validation

import (
	"testing"

	"github.com/julianstephens/scentry/internal/models"
)

func TestValidate_CleanState(t *testing.T) {
	validator := New()

	result := validator.Validate(State{
		Library: []string{"Creed Aventus", "Dior Sauvage"},
		Planner: map[string]string{"2026-09-07": "Creed Aventus"},
		Recent:  []models.RecentEntry{{Name: "Dior Sauvage"}},
	})

	// "Creed Aventus" and "Dior Sauvage" have price data, so a clean state
	// can still carry zero conflicts without wishlist entries
	if result.HasConflicts() {
		t.Errorf("Unexpected conflicts: %s", result.FormatReport())
	}
	if report := result.FormatReport(); report != "No conflicts detected." {
		t.Errorf("Unexpected report: %q", report)
	}
}

func TestValidate_DuplicateFragranceCaseInsensitive(t *testing.T) {
	validator := New()

	result := validator.Validate(State{
		Library: []string{"Creed Aventus", "creed aventus"},
	})

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictDuplicateFragrance {
			found = true
		}
	}
	if !found {
		t.Error("Expected ConflictDuplicateFragrance")
	}
}

func TestValidate_PlannerOrphanAndInvalidDayKey(t *testing.T) {
	validator := New()

	result := validator.Validate(State{
		Library: []string{"Creed Aventus"},
		Planner: map[string]string{
			"2026-09-07": "Ghost Fragrance",
			"not-a-date": "Creed Aventus",
			"2026-09-08": "creed aventus", // case differs but still in library
		},
	})

	var orphans, badKeys int
	for _, conflict := range result.Conflicts {
		switch conflict.Type {
		case ConflictPlannerOrphan:
			orphans++
		case ConflictInvalidDayKey:
			badKeys++
		}
	}
	if orphans != 1 {
		t.Errorf("Got %d planner orphans, want 1", orphans)
	}
	if badKeys != 1 {
		t.Errorf("Got %d invalid day keys, want 1", badKeys)
	}
}

func TestValidate_RecentOrphan(t *testing.T) {
	validator := New()

	result := validator.Validate(State{
		Library: []string{"Creed Aventus"},
		Recent: []models.RecentEntry{
			{Name: "Creed Aventus"},
			{Name: "Removed One"},
		},
	})

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictRecentOrphan {
			found = true
		}
	}
	if !found {
		t.Error("Expected ConflictRecentOrphan")
	}
}

func TestValidate_WishlistUnpriced(t *testing.T) {
	validator := New()

	result := validator.Validate(State{
		Wishlist: []models.WishlistEntry{
			{Name: "Good Girl"},     // in the price fixture
			{Name: "Obscure Attar"}, // not
		},
	})

	var unpriced int
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictWishlistUnpriced {
			unpriced++
		}
	}
	if unpriced != 1 {
		t.Errorf("Got %d unpriced wishlist conflicts, want 1", unpriced)
	}
}

func TestAutoFix(t *testing.T) {
	validator := New()

	state := State{
		Library: []string{"Creed Aventus", "creed aventus", "Dior Sauvage"},
		Planner: map[string]string{
			"2026-09-07": "Ghost Fragrance",
			"2026-09-08": "Dior Sauvage",
		},
		Recent: []models.RecentEntry{
			{Name: "Dior Sauvage"},
			{Name: "Removed One"},
		},
	}

	result := validator.Validate(state)
	fixed, actions := AutoFix(result.Conflicts, state)

	if len(actions) != 3 {
		t.Fatalf("Got %d fix actions, want 3: %+v", len(actions), actions)
	}

	if len(fixed.Library) != 2 || fixed.Library[0] != "Creed Aventus" || fixed.Library[1] != "Dior Sauvage" {
		t.Errorf("Library after fix: %v", fixed.Library)
	}
	if _, ok := fixed.Planner["2026-09-07"]; ok {
		t.Error("Orphaned planner entry survived auto-fix")
	}
	if fixed.Planner["2026-09-08"] != "Dior Sauvage" {
		t.Error("Valid planner entry was removed")
	}
	if len(fixed.Recent) != 1 || fixed.Recent[0].Name != "Dior Sauvage" {
		t.Errorf("Recent after fix: %v", fixed.Recent)
	}
}

func TestAutoFix_LeavesUnpricedWishlistAlone(t *testing.T) {
	validator := New()

	state := State{
		Wishlist: []models.WishlistEntry{{Name: "Obscure Attar"}},
	}

	result := validator.Validate(state)
	fixed, actions := AutoFix(result.Conflicts, state)

	if len(actions) != 0 {
		t.Errorf("Unpriced wishlist entries should not be auto-fixed: %+v", actions)
	}
	if len(fixed.Wishlist) != 1 {
		t.Error("Wishlist should be untouched")
	}
}
