package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(userMiddleware)

		r.Post("/flashcards", s.handleCreateFlashcard)
		r.Get("/flashcards", s.handleListFlashcards)
		r.Get("/flashcards/due", s.handleDueFlashcards)
		r.Post("/flashcards/archive", s.handleArchiveFlashcards)
		r.Get("/flashcards/{id}", s.handleGetFlashcard)
		r.Post("/flashcards/{id}/review", s.handleReviewFlashcard)
		r.Get("/stats", s.handleStats)
	})

	return r
}
