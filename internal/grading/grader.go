// Package grading defines the optional LLM answer-grading collaborator.
// The review engine treats any Grade error as non-fatal and falls back to
// the heuristic scorer, so implementations are free to fail on timeouts,
// quota, or malformed model output.
package grading

import "context"

// GradeResult is the richer judgement an external grader produces for a
// typed answer.
type GradeResult struct {
	Score            int      `json:"score"`          // 0-100
	Quality          int      `json:"quality_rating"` // 1-5
	Verdict          string   `json:"verdict"`
	Feedback         string   `json:"feedback"`
	KeyPointsCovered int      `json:"key_points_covered"`
	KeyPointsMissing []string `json:"key_points_missing"`
	Confidence       int      `json:"confidence"` // 0-100
}

// Grader grades a typed answer against a card's question and reference
// answer. Implementations must respect ctx cancellation.
type Grader interface {
	Grade(ctx context.Context, question, referenceAnswer, typedAnswer string) (*GradeResult, error)
}
