package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
	"github.com/Oleksiy-Zhukov/studentsai/internal/services"
)

// ArchiveScanJob sweeps every user's schedules and tags cards that have
// crossed the mastery thresholds. One run covers all users.
type ArchiveScanJob struct {
	Reviews        services.ReviewService
	Schedules      repository.ScheduleRepository
	MinRepetitions int
}

func (j *ArchiveScanJob) Name() string { return "archive-scan" }

func (j *ArchiveScanJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	userIDs, err := j.Schedules.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users for archive scan: %w", err)
	}

	archived := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ids, err := j.Reviews.ArchiveMasteredFlashcards(ctx, userID, j.MinRepetitions)
		if err != nil {
			// Keep sweeping the remaining users.
			log.Warn("archive scan failed for user %d: %v", userID, err)
			continue
		}
		archived += len(ids)
	}

	log.Debug("archive scan done: users=%d, archived=%d", len(userIDs), archived)
	return nil
}

// Schedule submits the job to the pool every interval until ctx is
// cancelled. A zero or negative interval disables the scan.
func (j *ArchiveScanJob) Schedule(ctx context.Context, pool *Pool, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pool.Submit(j)
			}
		}
	}()
}
