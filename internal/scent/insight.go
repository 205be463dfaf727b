package scent

import (
	"fmt"
	"math/rand"
	"time"
)

// Insight summarizes a library's scent profile and suggests a gap to fill.
type Insight struct {
	MostCommon Tag
	Missing    []Tag
	Suggestion string
}

// Engine owns the randomness used when picking a gap suggestion. Tests inject
// a seeded source.
type Engine struct {
	r *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewEngineWithSource(src rand.Source) *Engine {
	return &Engine{r: rand.New(src)}
}

// LibraryInsight classifies every library entry (first match only, Versatile
// excluded from the tally) and builds a suggestion: a randomly chosen missing
// tag if any tag has zero occurrences, a well-rounded message otherwise, and a
// generic message when nothing classified at all.
func (e *Engine) LibraryInsight(library []string) Insight {
	counts := make(map[Tag]int)
	for _, name := range library {
		if tag := Classify(name); tag != TagVersatile {
			counts[tag]++
		}
	}

	insight := Insight{}
	maxCount := 0
	for _, tag := range Tags() {
		if counts[tag] == 0 {
			insight.Missing = append(insight.Missing, tag)
		} else if counts[tag] > maxCount {
			insight.MostCommon = tag
			maxCount = counts[tag]
		}
	}

	switch {
	case len(counts) == 0:
		insight.Suggestion = "Your collection is unique! Try adding more to discover your scent profile."
	case len(insight.Missing) > 0:
		gap := insight.Missing[e.r.Intn(len(insight.Missing))]
		insight.Suggestion = fmt.Sprintf("You have mostly %s scents. Why not try something %s?", insight.MostCommon, gap)
	default:
		insight.Suggestion = fmt.Sprintf("You have a well-rounded collection, but %s is your favorite!", insight.MostCommon)
	}

	return insight
}
