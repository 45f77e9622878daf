// Package scoring grades a typed answer against the card's reference
// answer with a deterministic word-overlap heuristic. It is the fallback
// path when no LLM grader is configured or the grader call fails.
package scoring

import (
	"strings"
	"unicode"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// Result is the outcome of scoring one answer.
type Result struct {
	Score    int    // 0-100
	Quality  int    // 1-5
	Verdict  string
	Feedback string
}

// Score compares a typed answer to the reference answer. It is total over
// any pair of strings, including empty ones.
//
// Both strings are case-folded, stripped of punctuation and collapsed to
// single spaces before comparison. An exact match after normalization is a
// perfect answer; otherwise the fraction of reference words found in the
// typed answer picks the band.
func Score(reference, typed string) Result {
	ref := normalize(reference)
	got := normalize(typed)

	if ref == got {
		return Result{
			Score:    100,
			Quality:  5,
			Verdict:  models.VerdictCorrect,
			Feedback: "Perfect answer!",
		}
	}

	refWords := strings.Fields(ref)
	if len(refWords) == 0 {
		return Result{
			Score:    20,
			Quality:  1,
			Verdict:  models.VerdictIncorrect,
			Feedback: FeedbackFor(1),
		}
	}

	typedSet := make(map[string]bool)
	for _, w := range strings.Fields(got) {
		typedSet[w] = true
	}

	overlap := 0
	for _, w := range refWords {
		if typedSet[w] {
			overlap++
		}
	}
	similarity := float64(overlap) / float64(len(refWords))

	var r Result
	switch {
	case similarity >= 0.8:
		r = Result{Score: 95, Quality: 5, Verdict: models.VerdictCorrect}
	case similarity >= 0.6:
		r = Result{Score: 80, Quality: 4, Verdict: models.VerdictCorrect}
	case similarity >= 0.4:
		r = Result{Score: 65, Quality: 3, Verdict: models.VerdictPartial}
	case similarity >= 0.2:
		r = Result{Score: 45, Quality: 2, Verdict: models.VerdictPartial}
	default:
		r = Result{Score: 25, Quality: 1, Verdict: models.VerdictIncorrect}
	}
	r.Feedback = FeedbackFor(r.Quality)
	return r
}

// FeedbackFor returns the quality-banded feedback template. Callers that
// resolve quality from a manual rating use it directly.
func FeedbackFor(quality int) string {
	switch {
	case quality >= 4:
		return "Great recall! You've got this one down."
	case quality == 3:
		return "Close! Review the answer and you'll have it next time."
	default:
		return "Not quite. Study the answer and review this card again soon."
	}
}

// normalize lowercases, drops everything but letters, digits and spaces,
// and collapses whitespace runs.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
