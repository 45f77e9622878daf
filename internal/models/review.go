package models

import "time"

// Verdicts attached to a graded answer.
const (
	VerdictCorrect   = "correct"
	VerdictPartial   = "partial"
	VerdictIncorrect = "incorrect"
)

// Sources a resolved quality rating can come from.
const (
	GradedByManual = "manual"
	GradedByGrader = "grader"
	GradedByScorer = "scorer"
)

// ReviewSubmission is a user's typed answer to a card. ManualQuality, when
// set, bypasses both the grader and the heuristic scorer.
type ReviewSubmission struct {
	FlashcardID   int64  `json:"flashcard_id"`
	TypedAnswer   string `json:"typed_answer"`
	ManualQuality *int   `json:"quality,omitempty"`
}

// ReviewResult is returned to the caller after a completed review.
type ReviewResult struct {
	Quality          int               `json:"quality"`
	PerformanceScore int               `json:"performance_score"`
	Verdict          string            `json:"verdict"`
	Feedback         string            `json:"feedback"`
	GradedBy         string            `json:"graded_by"`
	Schedule         FlashcardSchedule `json:"schedule"`
	Mastery          FlashcardMastery  `json:"mastery"`
}

// ReviewHistory is one persisted audit row per completed review.
type ReviewHistory struct {
	ID               int64     `json:"id"`
	FlashcardID      int64     `json:"flashcard_id"`
	Quality          int       `json:"quality"`
	PerformanceScore int       `json:"performance_score"`
	Verdict          string    `json:"verdict"`
	GradedBy         string    `json:"graded_by"`
	ReviewedAt       time.Time `json:"reviewed_at"`
}
