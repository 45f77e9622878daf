package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// MockScheduleRepository is a mock implementation of repository.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Get(ctx context.Context, flashcardID, userID int64) (*models.FlashcardSchedule, error) {
	args := m.Called(ctx, flashcardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlashcardSchedule), args.Error(1)
}

func (m *MockScheduleRepository) ListByUser(ctx context.Context, userID int64) ([]models.FlashcardSchedule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlashcardSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Upsert(ctx context.Context, schedule models.FlashcardSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) UserIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
