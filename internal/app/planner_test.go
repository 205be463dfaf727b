package app

import (
	"errors"
	"testing"
	"time"
)

func TestWeekDayKeys_MondayStart(t *testing.T) {
	// Wednesday 2026-09-02
	wednesday := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	keys := WeekDayKeys(wednesday)
	if len(keys) != 7 {
		t.Fatalf("Expected 7 keys, got %d", len(keys))
	}
	if keys[0] != "2026-08-31" {
		t.Errorf("Week starts at %s, want Monday 2026-08-31", keys[0])
	}
	if keys[6] != "2026-09-06" {
		t.Errorf("Week ends at %s, want Sunday 2026-09-06", keys[6])
	}
}

func TestWeekDayKeys_SundayBelongsToPriorWeek(t *testing.T) {
	// Sunday 2026-09-06 is the last day of the week starting 2026-08-31
	sunday := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)

	keys := WeekDayKeys(sunday)
	if keys[0] != "2026-08-31" {
		t.Errorf("Week starts at %s, want 2026-08-31", keys[0])
	}
	if keys[6] != "2026-09-06" {
		t.Errorf("Week ends at %s, want 2026-09-06", keys[6])
	}
}

func TestWeekDayKeys_MondayIsFirstDay(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	keys := WeekDayKeys(monday)
	if keys[0] != "2026-08-31" {
		t.Errorf("Monday should start its own week, got %s", keys[0])
	}
}

func TestAssign_RequiresLibraryMembership(t *testing.T) {
	a := newTestApp(t)

	err := a.Assign("2026-09-07", "Creed Aventus")
	var nErr *NotInCatalogError
	if !errors.As(err, &nErr) {
		t.Errorf("Expected NotInCatalogError, got %v", err)
	}
}

func TestAssign_StoresLibraryCasing(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.AddFragrance("Creed Aventus"); err != nil {
		t.Fatal(err)
	}
	if err := a.Assign("2026-09-07", "CREED AVENTUS"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	if got := a.Planner()["2026-09-07"]; got != "Creed Aventus" {
		t.Errorf("Planner stores %q, want the library casing", got)
	}
}

func TestAssign_OverwritesExisting(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.AddFragrance("Creed Aventus"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.AddFragrance("Dior Sauvage"); err != nil {
		t.Fatal(err)
	}

	if err := a.Assign("2026-09-07", "Creed Aventus"); err != nil {
		t.Fatal(err)
	}
	if err := a.Assign("2026-09-07", "Dior Sauvage"); err != nil {
		t.Fatal(err)
	}

	if got := a.Planner()["2026-09-07"]; got != "Dior Sauvage" {
		t.Errorf("Expected overwrite, got %q", got)
	}
	if a.PlannedCount() != 1 {
		t.Errorf("PlannedCount = %d, want 1", a.PlannedCount())
	}
}

func TestTodaysFragrance(t *testing.T) {
	a := newTestApp(t)

	today := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	if _, ok := a.TodaysFragrance(today); ok {
		t.Error("Empty planner should report no assignment")
	}

	if _, err := a.AddFragrance("Creed Aventus"); err != nil {
		t.Fatal(err)
	}
	if err := a.Assign(DayKey(today), "Creed Aventus"); err != nil {
		t.Fatal(err)
	}

	name, ok := a.TodaysFragrance(today)
	if !ok || name != "Creed Aventus" {
		t.Errorf("TodaysFragrance = %q, %v", name, ok)
	}
}
