package sqlite

import (
	"context"
	"database/sql"

	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
	"github.com/Oleksiy-Zhukov/studentsai/internal/srs"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) StudyStats(ctx context.Context, userID int64) (*models.StudyStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching study stats: user_id=%d", userID)

	var stat models.StudyStats
	err := r.db.QueryRowContext(ctx, `
SELECT
    COUNT(DISTINCT f.id) AS total_cards,
    COALESCE(SUM(f.review_count), 0) AS total_reviews,
    COALESCE(AVG(f.mastery_level), 0) AS average_mastery,
    COUNT(DISTINCT CASE WHEN date(s.due_date) <= date('now') THEN f.id END) AS cards_due,
    COUNT(DISTINCT CASE WHEN date(s.due_date) > date('now') AND date(s.due_date) <= date('now', '+7 days') THEN f.id END) AS cards_due_soon,
    COUNT(DISTINCT CASE WHEN s.e_factor >= ? AND s.repetitions >= 3 THEN f.id END) AS cards_mastered,
    COUNT(DISTINCT CASE WHEN s.e_factor < 200 AND f.review_count > 3 THEN f.id END) AS cards_struggling
FROM flashcards f
LEFT JOIN flashcard_schedules s ON s.flashcard_id = f.id
WHERE f.user_id = ?
`, srs.MasteredEFactor, userID).Scan(
		&stat.TotalCards,
		&stat.TotalReviews,
		&stat.AverageMastery,
		&stat.CardsDue,
		&stat.CardsDueSoon,
		&stat.CardsMastered,
		&stat.CardsStruggling,
	)
	if err != nil {
		log.Error("failed to get study stats: %v", err)
		return nil, err
	}

	// Accuracy from the review audit trail: share of reviews graded as a
	// successful recall.
	err = r.db.QueryRowContext(ctx, `
SELECT CASE
    WHEN COUNT(*) > 0
    THEN ROUND(100.0 * SUM(CASE WHEN rh.quality >= 3 THEN 1 ELSE 0 END) / COUNT(*), 1)
    ELSE 0
END
FROM review_history rh
JOIN flashcards f ON f.id = rh.flashcard_id
WHERE f.user_id = ?
`, userID).Scan(&stat.OverallAccuracy)
	if err != nil {
		log.Error("failed to get accuracy: %v", err)
		return nil, err
	}

	return &stat, nil
}
