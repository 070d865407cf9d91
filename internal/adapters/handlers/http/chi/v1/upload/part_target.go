package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1PartTargetResponse is the presigned target for one part
type V1PartTargetResponse struct {
	PartNumber   int               `json:"part_number"`
	PresignedURL string            `json:"presigned_url"`
	Headers      map[string]string `json:"headers,omitempty"`
	ExpiresAt    *time.Time        `json:"expires_at,omitempty"`
}

func (h *HandlerV1) PartUploadTargetV1(w http.ResponseWriter, r *http.Request) {

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	partNumber, err := strconv.Atoi(chi.URLParam(r, "partNumber"))
	if err != nil {
		http.Error(w, "invalid part number", http.StatusBadRequest)
		return
	}

	part, err := h.uploadService.PartUploadTarget(r.Context(), sessionID, partNumber)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrInvalidPartNumber):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error presigning part", "error", err, "session_id", sessionID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1PartTargetResponse{
		PartNumber:   part.PartNumber,
		PresignedURL: part.PresignedURL,
		Headers:      part.Headers,
		ExpiresAt:    part.ExpiresAt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
