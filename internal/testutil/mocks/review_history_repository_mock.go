package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// MockReviewHistoryRepository is a mock implementation of repository.ReviewHistoryRepository
type MockReviewHistoryRepository struct {
	mock.Mock
}

func (m *MockReviewHistoryRepository) Insert(ctx context.Context, h models.ReviewHistory) (int64, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewHistoryRepository) ListRecent(ctx context.Context, flashcardID int64, limit int) ([]models.ReviewHistory, error) {
	args := m.Called(ctx, flashcardID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewHistory), args.Error(1)
}
