package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
)

type scheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository implementation
func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Get(ctx context.Context, flashcardID, userID int64) (*models.FlashcardSchedule, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("fetching schedule: flashcard_id=%d, user_id=%d", flashcardID, userID)

	var s models.FlashcardSchedule
	err := r.db.QueryRowContext(ctx, `
SELECT flashcard_id, user_id, e_factor, interval_days, due_date, repetitions, updated_at
FROM flashcard_schedules
WHERE flashcard_id = ? AND user_id = ?
`, flashcardID, userID).Scan(&s.FlashcardID, &s.UserID, &s.EFactor, &s.IntervalDays,
		&s.DueDate, &s.Repetitions, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("schedule not found: flashcard_id=%d", flashcardID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get schedule: %v", err)
		return nil, err
	}
	s.DueDate = models.DateOnly(s.DueDate)
	return &s, nil
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID int64) ([]models.FlashcardSchedule, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("listing schedules: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT flashcard_id, user_id, e_factor, interval_days, due_date, repetitions, updated_at
FROM flashcard_schedules
WHERE user_id = ?
ORDER BY flashcard_id
`, userID)
	if err != nil {
		log.Error("failed to query schedules: %v", err)
		return nil, err
	}
	defer rows.Close()

	var schedules []models.FlashcardSchedule
	for rows.Next() {
		var s models.FlashcardSchedule
		if err := rows.Scan(&s.FlashcardID, &s.UserID, &s.EFactor, &s.IntervalDays,
			&s.DueDate, &s.Repetitions, &s.UpdatedAt); err != nil {
			log.Error("failed to scan schedule row: %v", err)
			return nil, err
		}
		s.DueDate = models.DateOnly(s.DueDate)
		schedules = append(schedules, s)
	}
	log.Debug("found %d schedules", len(schedules))
	return schedules, rows.Err()
}

// Upsert writes a schedule with an optimistic guard on updated_at. A lost
// race returns a CONFLICT error; the caller reloads and re-runs the review,
// which is safe because the scheduling update is a pure function.
func (r *scheduleRepository) Upsert(ctx context.Context, s models.FlashcardSchedule) error {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("upserting schedule: flashcard_id=%d, interval=%d, ease=%.2f",
		s.FlashcardID, s.IntervalDays, s.EFactorValue())

	now := time.Now().UTC()

	if s.UpdatedAt.IsZero() {
		res, err := r.db.ExecContext(ctx, `
INSERT INTO flashcard_schedules (flashcard_id, user_id, e_factor, interval_days, due_date, repetitions, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(flashcard_id) DO NOTHING
`, s.FlashcardID, s.UserID, s.EFactor, s.IntervalDays, s.DueDate, s.Repetitions, now)
		if err != nil {
			log.Error("failed to insert schedule: %v", err)
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			// Another review created the row first.
			return apperrors.NewConflictError("flashcard schedule", s.FlashcardID)
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE flashcard_schedules
SET e_factor = ?, interval_days = ?, due_date = ?, repetitions = ?, updated_at = ?
WHERE flashcard_id = ? AND updated_at = ?
`, s.EFactor, s.IntervalDays, s.DueDate, s.Repetitions, now, s.FlashcardID, s.UpdatedAt)
	if err != nil {
		log.Error("failed to update schedule: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Warn("schedule update lost a concurrent race: flashcard_id=%d", s.FlashcardID)
		return apperrors.NewConflictError("flashcard schedule", s.FlashcardID)
	}
	return nil
}

func (r *scheduleRepository) UserIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM flashcard_schedules ORDER BY user_id`)
	if err != nil {
		log.Error("failed to query user ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
