package repository

import (
	"context"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// FlashcardRepository handles flashcard data access. All reads are scoped
// by owner; writes to mastery fields come only from the review engine.
type FlashcardRepository interface {
	Insert(ctx context.Context, card models.Flashcard) (int64, error)
	Get(ctx context.Context, id, userID int64) (*models.Flashcard, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Flashcard, error)
	UpdateMastery(ctx context.Context, id int64, m models.FlashcardMastery) error
	AddTag(ctx context.Context, id int64, tag string) error
}

// ScheduleRepository handles the per-card scheduling records. Upsert must
// serialize concurrent writers on the same card: a write that lost a race
// returns a conflict error so the caller can reload and re-run the review.
type ScheduleRepository interface {
	Get(ctx context.Context, flashcardID, userID int64) (*models.FlashcardSchedule, error)
	ListByUser(ctx context.Context, userID int64) ([]models.FlashcardSchedule, error)
	Upsert(ctx context.Context, schedule models.FlashcardSchedule) error
	UserIDs(ctx context.Context) ([]int64, error)
}

// ReviewHistoryRepository records one audit row per completed review.
type ReviewHistoryRepository interface {
	Insert(ctx context.Context, h models.ReviewHistory) (int64, error)
	ListRecent(ctx context.Context, flashcardID int64, limit int) ([]models.ReviewHistory, error)
}

// StatsRepository aggregates study statistics.
type StatsRepository interface {
	StudyStats(ctx context.Context, userID int64) (*models.StudyStats, error)
}
