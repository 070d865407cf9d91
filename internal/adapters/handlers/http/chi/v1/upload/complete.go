package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1CompleteUploadRequest carries the client-reported etags per part
type V1CompleteUploadRequest struct {
	Parts []V1CompletedPart `json:"parts"`
}

// V1CompletedPart is one uploaded part as reported by the client
type V1CompletedPart struct {
	PartNumber int    `json:"part_number"`
	ETag       string `json:"etag"`
}

// V1CompleteUploadResponse confirms assembly of the final object
type V1CompleteUploadResponse struct {
	VideoID  uuid.UUID `json:"video_id"`
	Location string    `json:"location,omitempty"`
}

func (h *HandlerV1) CompleteUploadV1(w http.ResponseWriter, r *http.Request) {

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	var req V1CompleteUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Parts) == 0 {
		http.Error(w, "no parts provided", http.StatusBadRequest)
		return
	}

	parts := make([]domain.UploadPart, 0, len(req.Parts))
	for _, part := range req.Parts {
		parts = append(parts, domain.UploadPart{
			PartNumber: part.PartNumber,
			ETag:       part.ETag,
		})
	}

	videoID, location, err := h.uploadService.CompleteChunked(r.Context(), sessionID, parts)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrMismatchNBParts),
		errors.Is(err, domain.ErrDuplicatePart),
		errors.Is(err, domain.ErrInvalidPartNumber):
		h.logger.Error("invalid complete upload request", "error", err, "session_id", sessionID)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error completing upload", "error", err, "session_id", sessionID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1CompleteUploadResponse{Location: location}
	if videoID != nil {
		resp.VideoID = *videoID
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
