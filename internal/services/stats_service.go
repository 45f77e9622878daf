package services

import (
	"context"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
)

// StatsService exposes aggregated study statistics.
type StatsService interface {
	GetStudyStats(ctx context.Context, userID int64) (*models.StudyStats, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) GetStudyStats(ctx context.Context, userID int64) (*models.StudyStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting study stats: user_id=%d", userID)

	stat, err := s.stats.StudyStats(ctx, userID)
	if err != nil {
		log.Error("failed to get study stats: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	return stat, nil
}
