package sqlite

import (
	"context"
	"database/sql"

	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
)

type reviewHistoryRepository struct {
	db *sql.DB
}

// NewReviewHistoryRepository creates a new ReviewHistoryRepository implementation
func NewReviewHistoryRepository(db *sql.DB) repository.ReviewHistoryRepository {
	return &reviewHistoryRepository{db: db}
}

func (r *reviewHistoryRepository) Insert(ctx context.Context, h models.ReviewHistory) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("inserting review history: flashcard_id=%d, quality=%d, graded_by=%s",
		h.FlashcardID, h.Quality, h.GradedBy)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (flashcard_id, quality, performance_score, verdict, graded_by)
VALUES (?, ?, ?, ?, ?)
`, h.FlashcardID, h.Quality, h.PerformanceScore, h.Verdict, h.GradedBy)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reviewHistoryRepository) ListRecent(ctx context.Context, flashcardID int64, limit int) ([]models.ReviewHistory, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("listing review history: flashcard_id=%d, limit=%d", flashcardID, limit)

	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, flashcard_id, quality, performance_score, verdict, graded_by, reviewed_at
FROM review_history
WHERE flashcard_id = ?
ORDER BY reviewed_at DESC, id DESC
LIMIT ?
`, flashcardID, limit)
	if err != nil {
		log.Error("failed to query review history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var history []models.ReviewHistory
	for rows.Next() {
		var h models.ReviewHistory
		if err := rows.Scan(&h.ID, &h.FlashcardID, &h.Quality, &h.PerformanceScore,
			&h.Verdict, &h.GradedBy, &h.ReviewedAt); err != nil {
			log.Error("failed to scan history row: %v", err)
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
