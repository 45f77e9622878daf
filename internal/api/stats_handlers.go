package api

import "net/http"

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := userFromContext(r.Context())

	stats, err := s.StatsService.GetStudyStats(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}
