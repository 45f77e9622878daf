package api

import (
	"github.com/Oleksiy-Zhukov/studentsai/internal/services"
)

// Server carries the handler dependencies.
type Server struct {
	FlashcardService services.FlashcardService
	ReviewService    services.ReviewService
	StatsService     services.StatsService

	// Default page size for GET /api/flashcards/due when the query
	// parameter is absent.
	DueLimitDefault int
}
