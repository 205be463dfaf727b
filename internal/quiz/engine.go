package quiz

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/storage"
)

// Engine walks the fixed question sequence, accumulating one answer per
// question. Answers live only in memory until Finish; an abandoned run is
// simply discarded.
type Engine struct {
	index   int
	answers map[string]string
	done    bool
}

func NewEngine() *Engine {
	return &Engine{answers: make(map[string]string)}
}

// Index returns the current question position, in [0, len(Questions)-1].
func (e *Engine) Index() int {
	return e.index
}

// Current returns the question at the current position.
func (e *Engine) Current() models.Question {
	return Questions[e.index]
}

// Answers returns a snapshot of the accumulated answers.
func (e *Engine) Answers() map[string]string {
	out := make(map[string]string, len(e.answers))
	for id, value := range e.answers {
		out[id] = value
	}
	return out
}

// Answer records a value for a question, overwriting any earlier answer.
func (e *Engine) Answer(questionID, value string) error {
	if e.done {
		return fmt.Errorf("questionnaire already finished; restart to answer again")
	}
	if _, ok := questionByID(questionID); !ok {
		return fmt.Errorf("unknown question: %s", questionID)
	}
	e.answers[questionID] = value
	return nil
}

// answered reports whether the current question has an answer.
func (e *Engine) answered() bool {
	_, ok := e.answers[e.Current().ID]
	return ok
}

// Next advances to the following question. It requires the current question
// to be answered and is a no-op on the last question.
func (e *Engine) Next() error {
	if !e.answered() {
		return fmt.Errorf("answer the current question first")
	}
	if e.index < len(Questions)-1 {
		e.index++
	}
	return nil
}

// Previous steps back one question; no-op at the start.
func (e *Engine) Previous() {
	if e.index > 0 {
		e.index--
	}
}

// AtEnd reports whether the engine is on the last question.
func (e *Engine) AtEnd() bool {
	return e.index == len(Questions)-1
}

// Done reports whether Finish has run.
func (e *Engine) Done() bool {
	return e.done
}

// Finish persists the answers and marks the engine terminal. It requires the
// current question to be answered, and rejects a second call until Restart.
func (e *Engine) Finish(store storage.Provider) error {
	if e.done {
		return fmt.Errorf("questionnaire already finished")
	}
	if !e.answered() {
		return fmt.Errorf("answer the current question first")
	}
	if err := store.SaveAnswers(e.answers); err != nil {
		return err
	}
	e.done = true
	return nil
}

// Restart clears the index and answers so the questionnaire can run again.
func (e *Engine) Restart() {
	e.index = 0
	e.answers = make(map[string]string)
	e.done = false
}
