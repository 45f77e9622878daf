package services

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/grading"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
	"github.com/Oleksiy-Zhukov/studentsai/internal/scoring"
	"github.com/Oleksiy-Zhukov/studentsai/internal/srs"
)

// performanceByQuality maps a bare quality rating to the 0-100 performance
// scale when no grader or scorer produced an explicit score. Quality 0 is
// the scheduling-internal failure signal.
var performanceByQuality = map[int]int{0: 0, 1: 20, 2: 40, 3: 60, 4: 80, 5: 100}

// ReviewService handles flashcard review business logic: grading a typed
// answer, advancing the card's schedule, and updating its mastery fields.
type ReviewService interface {
	ReviewFlashcard(ctx context.Context, sub models.ReviewSubmission, userID int64) (*models.ReviewResult, error)
	ListDueFlashcards(ctx context.Context, userID int64, limit int) ([]int64, error)
	ArchiveMasteredFlashcards(ctx context.Context, userID int64, minRepetitions int) ([]int64, error)
}

type reviewService struct {
	cards     repository.FlashcardRepository
	schedules repository.ScheduleRepository
	history   repository.ReviewHistoryRepository
	grader    grading.Grader // nil when grading is disabled
	now       func() time.Time
}

// NewReviewService creates a new ReviewService. grader may be nil, in
// which case every answer goes through the heuristic scorer.
func NewReviewService(
	cards repository.FlashcardRepository,
	schedules repository.ScheduleRepository,
	history repository.ReviewHistoryRepository,
	grader grading.Grader,
) ReviewService {
	return &reviewService{
		cards:     cards,
		schedules: schedules,
		history:   history,
		grader:    grader,
		now:       time.Now,
	}
}

func (s *reviewService) ReviewFlashcard(ctx context.Context, sub models.ReviewSubmission, userID int64) (*models.ReviewResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing flashcard: flashcard_id=%d, user_id=%d", sub.FlashcardID, userID)

	// Validate before touching any state.
	if sub.ManualQuality != nil {
		if q := *sub.ManualQuality; q < 0 || q > 5 {
			return nil, apperrors.NewValidationError("quality", "must be between 0 and 5")
		}
	} else if strings.TrimSpace(sub.TypedAnswer) == "" {
		return nil, apperrors.NewValidationError("typed_answer", "cannot be empty")
	}

	card, err := s.cards.Get(ctx, sub.FlashcardID, userID)
	if err != nil {
		log.Error("failed to load flashcard: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if card == nil {
		return nil, apperrors.NewNotFoundError("flashcard", sub.FlashcardID)
	}

	today := s.now()
	schedule, err := s.schedules.Get(ctx, sub.FlashcardID, userID)
	if err != nil {
		log.Error("failed to load schedule: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if schedule == nil {
		// First review of this card.
		fresh := models.NewSchedule(sub.FlashcardID, userID, today)
		schedule = &fresh
	}

	quality, performance, verdict, feedback, gradedBy := s.resolveQuality(ctx, card, sub)

	updated := srs.Advance(*schedule, quality, today)
	mastery := srs.UpdateMastery(card.FlashcardMastery, performance, updated.Repetitions)

	log.Debug("applied review: quality=%d, new interval=%d days, ease=%.2f, mastery=%d",
		quality, updated.IntervalDays, updated.EFactorValue(), mastery.MasteryLevel)

	if err := s.schedules.Upsert(ctx, updated); err != nil {
		log.Error("failed to save schedule: %v", err)
		if appErr, ok := err.(*apperrors.AppError); ok {
			return nil, appErr
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.cards.UpdateMastery(ctx, card.ID, mastery); err != nil {
		log.Error("failed to save mastery: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	// Audit trail insert is non-fatal; a review must not fail because
	// history storage does.
	if _, err := s.history.Insert(ctx, models.ReviewHistory{
		FlashcardID:      card.ID,
		Quality:          quality,
		PerformanceScore: performance,
		Verdict:          verdict,
		GradedBy:         gradedBy,
	}); err != nil {
		log.Warn("failed to store review history: %v", err)
	}

	return &models.ReviewResult{
		Quality:          quality,
		PerformanceScore: performance,
		Verdict:          verdict,
		Feedback:         feedback,
		GradedBy:         gradedBy,
		Schedule:         updated,
		Mastery:          mastery,
	}, nil
}

// resolveQuality picks the quality rating for a submission: a manual
// rating wins outright, then a single grader attempt, then the heuristic
// scorer. Grader failure is silent by contract.
func (s *reviewService) resolveQuality(ctx context.Context, card *models.Flashcard, sub models.ReviewSubmission) (quality, performance int, verdict, feedback, gradedBy string) {
	log := logger.FromContext(ctx)

	if sub.ManualQuality != nil {
		quality = *sub.ManualQuality
		return quality, performanceByQuality[quality], verdictForQuality(quality),
			scoring.FeedbackFor(quality), models.GradedByManual
	}

	if s.grader != nil {
		result, err := s.grader.Grade(ctx, card.Question, card.Answer, sub.TypedAnswer)
		if err == nil {
			return result.Quality, result.Score, result.Verdict, result.Feedback, models.GradedByGrader
		}
		// Non-fatal: fall back to the scorer without surfacing the error.
		log.Warn("grader unavailable, falling back to scorer: %v", err)
	}

	scored := scoring.Score(card.Answer, sub.TypedAnswer)
	return scored.Quality, scored.Score, scored.Verdict, scored.Feedback, models.GradedByScorer
}

func verdictForQuality(quality int) string {
	switch {
	case quality >= 4:
		return models.VerdictCorrect
	case quality == 3:
		return models.VerdictPartial
	default:
		return models.VerdictIncorrect
	}
}

func (s *reviewService) ListDueFlashcards(ctx context.Context, userID int64, limit int) ([]int64, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing due flashcards: user_id=%d, limit=%d", userID, limit)

	if limit < 1 {
		return nil, apperrors.NewValidationError("limit", "must be at least 1")
	}

	schedules, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load schedules: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	ids := srs.DueCards(schedules, s.now(), limit)
	log.Debug("%d flashcards due", len(ids))
	return ids, nil
}

func (s *reviewService) ArchiveMasteredFlashcards(ctx context.Context, userID int64, minRepetitions int) ([]int64, error) {
	log := logger.FromContext(ctx)
	log.Debug("archiving mastered flashcards: user_id=%d, min_repetitions=%d", userID, minRepetitions)

	if minRepetitions < 1 {
		return nil, apperrors.NewValidationError("min_repetitions", "must be at least 1")
	}

	schedules, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load schedules: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	ids := srs.FindMastered(schedules, minRepetitions)
	for _, id := range ids {
		if err := s.cards.AddTag(ctx, id, models.TagMastered); err != nil {
			log.Error("failed to tag mastered flashcard %d: %v", id, err)
			return nil, apperrors.NewInternalError(err)
		}
	}

	if len(ids) > 0 {
		log.Info("archived %d mastered flashcards for user %d", len(ids), userID)
	}
	return ids, nil
}
