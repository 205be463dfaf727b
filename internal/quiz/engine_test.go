package quiz

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/scentry/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scentry.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func answerAll(t *testing.T, e *Engine) {
	t.Helper()

	values := map[string]string{
		"occasion":   "casual",
		"season":     "summer",
		"mood":       "confident",
		"preference": "fresh",
		"intensity":  "moderate",
	}
	for {
		q := e.Current()
		if err := e.Answer(q.ID, values[q.ID]); err != nil {
			t.Fatalf("Answer(%s) failed: %v", q.ID, err)
		}
		if e.AtEnd() {
			return
		}
		if err := e.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}
}

func TestEngine_StartsAtFirstQuestion(t *testing.T) {
	e := NewEngine()
	if e.Index() != 0 {
		t.Errorf("Index = %d, want 0", e.Index())
	}
	if e.Current().ID != "occasion" {
		t.Errorf("First question is %s, want occasion", e.Current().ID)
	}
}

func TestEngine_NextRequiresAnswer(t *testing.T) {
	e := NewEngine()

	if err := e.Next(); err == nil {
		t.Error("Next without an answer should fail")
	}

	if err := e.Answer("occasion", "casual"); err != nil {
		t.Fatal(err)
	}
	if err := e.Next(); err != nil {
		t.Errorf("Next after answering failed: %v", err)
	}
	if e.Index() != 1 {
		t.Errorf("Index = %d, want 1", e.Index())
	}
}

func TestEngine_NextIsNoOpAtLastQuestion(t *testing.T) {
	e := NewEngine()
	answerAll(t, e)

	if !e.AtEnd() {
		t.Fatal("Expected to be at the last question")
	}
	if err := e.Next(); err != nil {
		t.Fatalf("Next at end returned error: %v", err)
	}
	if e.Index() != len(Questions)-1 {
		t.Errorf("Index moved past the end: %d", e.Index())
	}
}

func TestEngine_PreviousIsNoOpAtStart(t *testing.T) {
	e := NewEngine()
	e.Previous()
	if e.Index() != 0 {
		t.Errorf("Index = %d, want 0", e.Index())
	}
}

func TestEngine_AnswerRejectsUnknownQuestion(t *testing.T) {
	e := NewEngine()
	if err := e.Answer("no_such_question", "x"); err == nil {
		t.Error("Expected an error for an unknown question")
	}
}

func TestEngine_AnswerOverwrites(t *testing.T) {
	e := NewEngine()

	if err := e.Answer("occasion", "casual"); err != nil {
		t.Fatal(err)
	}
	if err := e.Answer("occasion", "romantic"); err != nil {
		t.Fatal(err)
	}
	if got := e.Answers()["occasion"]; got != "romantic" {
		t.Errorf("Answer not overwritten, got %q", got)
	}
}

func TestEngine_FinishPersistsAndTerminates(t *testing.T) {
	store := newTestStore(t)
	e := NewEngine()
	answerAll(t, e)

	if err := e.Finish(store); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if !e.Done() {
		t.Error("Done should be true after Finish")
	}

	saved, err := store.GetAnswers()
	if err != nil {
		t.Fatal(err)
	}
	if saved["occasion"] != "casual" || saved["intensity"] != "moderate" {
		t.Errorf("Answers not persisted: %v", saved)
	}

	// Terminal until restart
	if err := e.Finish(store); err == nil {
		t.Error("Second Finish should fail")
	}
	if err := e.Answer("occasion", "romantic"); err == nil {
		t.Error("Answer after Finish should fail")
	}
}

func TestEngine_Restart(t *testing.T) {
	store := newTestStore(t)
	e := NewEngine()
	answerAll(t, e)
	if err := e.Finish(store); err != nil {
		t.Fatal(err)
	}

	e.Restart()
	if e.Index() != 0 || e.Done() || len(e.Answers()) != 0 {
		t.Error("Restart did not clear engine state")
	}
	if err := e.Answer("occasion", "special"); err != nil {
		t.Errorf("Answer after Restart failed: %v", err)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	recs := GenerateRecommendations(map[string]string{
		"occasion":   "romantic",
		"season":     "winter",
		"preference": "woody",
		"mood":       "relaxed",
	})

	titles := make([]string, len(recs))
	for i, rec := range recs {
		titles[i] = rec.Title
	}

	want := []string{
		"Romantic Evening Fragrances",
		"Winter Fragrances",
		"Woody & Earthy Notes",
		"Laid-Back Scents",
		"Pro Tips",
	}
	if len(titles) != len(want) {
		t.Fatalf("Got %d blocks %v, want %d", len(titles), titles, len(want))
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("Block %d = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestGenerateRecommendations_UnmatchedAnswersContributeNothing(t *testing.T) {
	recs := GenerateRecommendations(map[string]string{
		"occasion": "special", // no block for this value
		"season":   "spring",  // no block
	})

	if len(recs) != 1 || recs[0].Title != "Pro Tips" {
		t.Errorf("Expected only Pro Tips, got %v", recs)
	}
}

func TestGenerateRecommendations_ProTipsAlwaysLast(t *testing.T) {
	recs := GenerateRecommendations(nil)
	if len(recs) == 0 || recs[len(recs)-1].Title != "Pro Tips" {
		t.Error("Pro Tips must be the final block")
	}
}
