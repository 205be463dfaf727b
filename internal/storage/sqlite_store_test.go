package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scentry.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LoadRequiresInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scentry.db")
	store := NewSQLiteStore(path)

	if err := store.Load(); err == nil {
		t.Error("Load before Init should fail")
	}
}

func TestSQLiteStore_LibraryRoundTripPreservesOrder(t *testing.T) {
	store := newSQLiteStore(t)

	names := []string{"Aventus", "Sauvage", "Bleu de Chanel"}
	if err := store.SaveLibrary(names); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(names) {
		t.Fatalf("Got %d entries, want %d", len(got), len(names))
	}
	for i, want := range names {
		if got[i] != want {
			t.Errorf("library[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestSQLiteStore_SaveLibraryReplacesPriorContents(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.SaveLibrary([]string{"Aventus", "Sauvage"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveLibrary([]string{"Good Girl"}); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Good Girl" {
		t.Errorf("Save did not replace contents: %v", got)
	}
}

func TestSQLiteStore_WishlistTimestamps(t *testing.T) {
	store := newSQLiteStore(t)

	added := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
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
	if len(got) != 1 {
		t.Fatalf("Got %d entries, want 1", len(got))
	}
	if !got[0].AddedAt.Equal(added) || !got[0].LastCheckedAt.Equal(added) {
		t.Errorf("Timestamps did not survive: %+v", got[0])
	}
}

func TestSQLiteStore_PlannerRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	planner := map[string]string{
		"2026-09-07": "Aventus",
		"2026-09-08": "Sauvage",
	}
	if err := store.SavePlanner(planner); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetPlanner()
	if err != nil {
		t.Fatal(err)
	}
	if got["2026-09-07"] != "Aventus" || got["2026-09-08"] != "Sauvage" {
		t.Errorf("Round trip lost data: %v", got)
	}
}

func TestSQLiteStore_ProfileRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if profile.Theme != constants.DefaultTheme {
		t.Errorf("Theme = %q, want %q", profile.Theme, constants.DefaultTheme)
	}

	profile.Gender = models.GenderMale
	profile.Theme = "male"
	profile.OnboardingComplete = true
	profile.QuestionnaireComplete = true
	if err := store.SaveProfile(profile); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if got.Gender != models.GenderMale || !got.OnboardingComplete || !got.QuestionnaireComplete {
		t.Errorf("Round trip lost data: %+v", got)
	}
}

func TestSQLiteStore_Reset(t *testing.T) {
	store := newSQLiteStore(t)

	if err := store.SaveLibrary([]string{"Aventus"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveAnswers(map[string]string{"occasion": "casual"}); err != nil {
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

	answers, err := store.GetAnswers()
	if err != nil {
		t.Fatal(err)
	}
	if len(answers) != 0 {
		t.Errorf("Answers survived reset: %v", answers)
	}
}

func TestSQLiteStore_ReopenSeesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scentry.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveLibrary([]string{"Aventus"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store2 := NewSQLiteStore(path)
	if err := store2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer store2.Close()

	library, err := store2.GetLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if len(library) != 1 || library[0] != "Aventus" {
		t.Errorf("Reopen lost data: %v", library)
	}
}
