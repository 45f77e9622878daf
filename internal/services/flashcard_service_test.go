package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/testutil/mocks"
)

func TestCreateFlashcard(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(repo)

	created := &models.Flashcard{ID: 7, UserID: 1, Question: "Q", Answer: "A"}
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Flashcard) bool {
		return c.UserID == 1 && c.Question == "Q" && c.Answer == "A"
	})).Return(int64(7), nil)
	repo.On("Get", mock.Anything, int64(7), int64(1)).Return(created, nil)

	card, err := svc.CreateFlashcard(context.Background(), 1, "Q", "A")

	require.NoError(t, err)
	assert.Equal(t, created, card)
	repo.AssertExpectations(t)
}

func TestCreateFlashcard_Validation(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   string
	}{
		{"empty question", "", "A"},
		{"blank question", "   ", "A"},
		{"empty answer", "Q", ""},
		{"blank answer", "Q", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockFlashcardRepository)
			svc := NewFlashcardService(repo)

			_, err := svc.CreateFlashcard(context.Background(), 1, tt.question, tt.answer)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateFlashcard_InsertError(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	repo.On("Insert", mock.Anything, mock.Anything).Return(int64(0), errors.New("db closed"))

	_, err := svc.CreateFlashcard(context.Background(), 1, "Q", "A")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestGetFlashcard_NotFound(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	repo.On("Get", mock.Anything, int64(5), int64(1)).Return(nil, nil)

	_, err := svc.GetFlashcard(context.Background(), 5, 1)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestListFlashcards(t *testing.T) {
	repo := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	cards := []models.Flashcard{
		{ID: 1, UserID: 1, Question: "Q1", Answer: "A1"},
		{ID: 2, UserID: 1, Question: "Q2", Answer: "A2"},
	}
	repo.On("ListByUser", mock.Anything, int64(1)).Return(cards, nil)

	got, err := svc.ListFlashcards(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, cards, got)
}
