package models

// StudyStats summarizes a user's flashcard progress.
type StudyStats struct {
	TotalCards      int     `json:"total_cards"`
	TotalReviews    int     `json:"total_reviews"`
	AverageMastery  float64 `json:"average_mastery"`
	CardsDue        int     `json:"cards_due"`
	CardsDueSoon    int     `json:"cards_due_soon"`
	CardsMastered   int     `json:"cards_mastered"`
	CardsStruggling int     `json:"cards_struggling"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}
