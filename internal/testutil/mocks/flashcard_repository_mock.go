package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Insert(ctx context.Context, card models.Flashcard) (int64, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlashcardRepository) Get(ctx context.Context, id, userID int64) (*models.Flashcard, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListByUser(ctx context.Context, userID int64) ([]models.Flashcard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateMastery(ctx context.Context, id int64, mastery models.FlashcardMastery) error {
	args := m.Called(ctx, id, mastery)
	return args.Error(0)
}

func (m *MockFlashcardRepository) AddTag(ctx context.Context, id int64, tag string) error {
	args := m.Called(ctx, id, tag)
	return args.Error(0)
}
