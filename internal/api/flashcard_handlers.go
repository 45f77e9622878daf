package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

type createFlashcardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *Server) handleCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	var req createFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.FlashcardService.CreateFlashcard(r.Context(), userID, req.Question, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, card)
}

func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	cards, err := s.FlashcardService.ListFlashcards(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	respondJSON(w, r, http.StatusOK, cards)
}

func (s *Server) handleGetFlashcard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	id, err := flashcardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.FlashcardService.GetFlashcard(r.Context(), id, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

type reviewRequest struct {
	TypedAnswer string `json:"typed_answer"`
	Quality     *int   `json:"quality,omitempty"`
}

func (s *Server) handleReviewFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID, _ := userFromContext(r.Context())

	id, err := flashcardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("reviewing flashcard: flashcard_id=%d", id)

	result, err := s.ReviewService.ReviewFlashcard(r.Context(), models.ReviewSubmission{
		FlashcardID:   id,
		TypedAnswer:   req.TypedAnswer,
		ManualQuality: req.Quality,
	}, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("flashcard reviewed: quality=%d, verdict=%s", result.Quality, result.Verdict)
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleDueFlashcards(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	limit := s.DueLimitDefault
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			handleError(w, r, apperrors.NewBadRequestError("invalid limit"))
			return
		}
		limit = parsed
	}

	ids, err := s.ReviewService.ListDueFlashcards(r.Context(), userID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"flashcard_ids": ids})
}

type archiveRequest struct {
	MinRepetitions int `json:"min_repetitions"`
}

func (s *Server) handleArchiveFlashcards(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	var req archiveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	ids, err := s.ReviewService.ArchiveMasteredFlashcards(r.Context(), userID, req.MinRepetitions)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"archived_ids": ids})
}

func flashcardIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequestError("invalid flashcard ID")
	}
	return id, nil
}
