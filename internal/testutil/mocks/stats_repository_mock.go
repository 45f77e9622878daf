package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) StudyStats(ctx context.Context, userID int64) (*models.StudyStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyStats), args.Error(1)
}
