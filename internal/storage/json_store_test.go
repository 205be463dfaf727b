package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
)

func newJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scentry.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scentry.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("First Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("Second Init should fail")
	}
}

func TestJSONStore_LoadRequiresInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scentry.json")
	store := NewJSONStore(path)

	if err := store.Load(); err == nil {
		t.Error("Load before Init should fail")
	}
}

func TestJSONStore_LibraryRoundTrip(t *testing.T) {
	store := newJSONStore(t)

	library, err := store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(library) != 0 {
		t.Errorf("Fresh store should have an empty library, got %v", library)
	}

	if err := store.SaveLibrary([]string{"Aventus", "Sauvage"}); err != nil {
		t.Fatal(err)
	}

	library, err = store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(library) != 2 || library[0] != "Aventus" || library[1] != "Sauvage" {
		t.Errorf("Round trip lost data: %v", library)
	}
}

func TestJSONStore_WishlistRoundTrip(t *testing.T) {
	store := newJSONStore(t)

	added := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.WishlistEntry{
		{ID: "id-1", Name: "Good Girl", AddedAt: added, LastCheckedAt: added},
	}
	if err := store.SaveWishlist(entries); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetWishlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "id-1" || !got[0].AddedAt.Equal(added) {
		t.Errorf("Round trip lost data: %+v", got)
	}
}

func TestJSONStore_PlannerRoundTrip(t *testing.T) {
	store := newJSONStore(t)

	planner, err := store.GetPlanner()
	if err != nil {
		t.Fatal(err)
	}
	if planner == nil {
		t.Fatal("GetPlanner must never return a nil map")
	}

	planner["2026-09-07"] = "Aventus"
	if err := store.SavePlanner(planner); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetPlanner()
	if err != nil {
		t.Fatal(err)
	}
	if got["2026-09-07"] != "Aventus" {
		t.Errorf("Round trip lost data: %v", got)
	}
}

func TestJSONStore_CorruptFileYieldsEmptyDefault(t *testing.T) {
	store := newJSONStore(t)

	if err := store.SaveLibrary([]string{"Aventus"}); err != nil {
		t.Fatal(err)
	}

	// Clobber the collection file
	path := store.keyPath(constants.KeyLibrary)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	library, err := store.GetLibrary()
	if err != nil {
		t.Fatalf("Corrupt file must not surface an error, got %v", err)
	}
	if len(library) != 0 {
		t.Errorf("Corrupt file should read as empty, got %v", library)
	}
}

func TestJSONStore_WrongVersionYieldsEmptyDefault(t *testing.T) {
	store := newJSONStore(t)

	path := store.keyPath(constants.KeyLibrary)
	if err := os.WriteFile(path, []byte(`{"version": 99, "data": ["Aventus"]}`), 0600); err != nil {
		t.Fatal(err)
	}

	library, err := store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(library) != 0 {
		t.Errorf("Unknown version should read as empty, got %v", library)
	}
}

func TestJSONStore_ProfileDefaultsTheme(t *testing.T) {
	store := newJSONStore(t)

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if profile.Theme != constants.DefaultTheme {
		t.Errorf("Theme = %q, want %q", profile.Theme, constants.DefaultTheme)
	}

	profile.Gender = models.GenderFemale
	profile.Theme = "female"
	profile.OnboardingComplete = true
	if err := store.SaveProfile(profile); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if got.Gender != models.GenderFemale || got.Theme != "female" || !got.OnboardingComplete {
		t.Errorf("Round trip lost data: %+v", got)
	}
}

func TestJSONStore_Reset(t *testing.T) {
	store := newJSONStore(t)

	if err := store.SaveLibrary([]string{"Aventus"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SavePlanner(map[string]string{"2026-09-07": "Aventus"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	library, err := store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(library) != 0 {
		t.Errorf("Library survived reset: %v", library)
	}

	planner, err := store.GetPlanner()
	if err != nil {
		t.Fatal(err)
	}
	if len(planner) != 0 {
		t.Errorf("Planner survived reset: %v", planner)
	}

	// The store stays initialized after a reset
	if err := store.Load(); err != nil {
		t.Errorf("Load after reset failed: %v", err)
	}
}

func TestJSONStore_SaveWithoutLoadFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scentry.json")
	store := NewJSONStore(path)

	if err := store.SaveLibrary([]string{"Aventus"}); err == nil {
		t.Error("Save before Load should fail")
	}
}
