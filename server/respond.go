package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/poiesic/paranuara/storage"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondQueryError maps a query failure onto a status code.
// Missing records are 404; everything else is logged and reported as 500.
func (h *handler) respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error("query failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"err", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}
