package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1ProgressResponse lists the part numbers already issued for a session
type V1ProgressResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Parts     []int     `json:"parts"`
}

func (h *HandlerV1) GetProgressV1(w http.ResponseWriter, r *http.Request) {

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	parts, err := h.uploadService.Progress(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error reading upload progress", "error", err, "session_id", sessionID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	if parts == nil {
		parts = []int{}
	}

	resp := V1ProgressResponse{SessionID: sessionID, Parts: parts}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
