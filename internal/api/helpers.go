package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/Oleksiy-Zhukov/studentsai/internal/errors"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON parses the request body into v, returning a BAD_REQUEST
// error on malformed input.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}
