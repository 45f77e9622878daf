package services

import (
	"context"
	"strings"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
)

// FlashcardService handles card management. The review engine itself never
// creates or deletes cards; this is the host-side surface that does.
type FlashcardService interface {
	CreateFlashcard(ctx context.Context, userID int64, question, answer string) (*models.Flashcard, error)
	GetFlashcard(ctx context.Context, id, userID int64) (*models.Flashcard, error)
	ListFlashcards(ctx context.Context, userID int64) ([]models.Flashcard, error)
}

type flashcardService struct {
	cards repository.FlashcardRepository
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(cards repository.FlashcardRepository) FlashcardService {
	return &flashcardService{cards: cards}
}

func (s *flashcardService) CreateFlashcard(ctx context.Context, userID int64, question, answer string) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating flashcard: user_id=%d", userID)

	if strings.TrimSpace(question) == "" {
		return nil, apperrors.NewValidationError("question", "cannot be empty")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, apperrors.NewValidationError("answer", "cannot be empty")
	}

	card := models.Flashcard{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}
	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	created, err := s.cards.Get(ctx, id, userID)
	if err != nil {
		log.Error("failed to load created flashcard: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	log.Info("flashcard created: id=%d", id)
	return created, nil
}

func (s *flashcardService) GetFlashcard(ctx context.Context, id, userID int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting flashcard: id=%d, user_id=%d", id, userID)

	card, err := s.cards.Get(ctx, id, userID)
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	if card == nil {
		return nil, apperrors.NewNotFoundError("flashcard", id)
	}
	return card, nil
}

func (s *flashcardService) ListFlashcards(ctx context.Context, userID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing flashcards: user_id=%d", userID)

	cards, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, apperrors.NewInternalError(err)
	}
	return cards, nil
}
