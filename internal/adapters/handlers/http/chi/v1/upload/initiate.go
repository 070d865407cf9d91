package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1InitiateUploadRequest declares the file a client wants to upload
type V1InitiateUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// V1InitiateUploadResponse carries either a single-shot target or a chunked
// session, selected by the strategy field
type V1InitiateUploadResponse struct {
	Strategy     domain.UploadStrategy `json:"strategy"`
	VideoID      uuid.UUID             `json:"video_id"`
	StorageKey   string                `json:"storage_key"`
	PresignedURL string                `json:"presigned_url,omitempty"`
	Headers      map[string]string     `json:"headers,omitempty"`
	ExpiresAt    *int64                `json:"expires_at,omitempty"`
	SessionID    *uuid.UUID            `json:"session_id,omitempty"`
	PartSize     int64                 `json:"part_size,omitempty"`
	TotalParts   int                   `json:"total_parts,omitempty"`
}

func (h *HandlerV1) InitiateUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1InitiateUploadRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding initiate upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.SizeBytes <= 0 {
		http.Error(w, "size_bytes is required", http.StatusBadRequest)
		return
	}

	var resp V1InitiateUploadResponse

	switch h.uploadService.ChooseStrategy(req.SizeBytes) {
	case domain.UploadStrategySingle:
		target, initErr := h.uploadService.InitiateSingle(r.Context(), req.Filename, req.ContentType, req.SizeBytes)
		if initErr != nil {
			h.writeInitiateError(w, initErr)
			return
		}
		resp = V1InitiateUploadResponse{
			Strategy:     domain.UploadStrategySingle,
			VideoID:      target.VideoID,
			StorageKey:   target.StorageKey,
			PresignedURL: target.PresignedURL,
			Headers:      target.Headers,
			ExpiresAt:    target.ExpiresAt,
		}
	case domain.UploadStrategyChunked:
		session, initErr := h.uploadService.InitiateChunked(r.Context(), req.Filename, req.ContentType, req.SizeBytes)
		if initErr != nil {
			h.writeInitiateError(w, initErr)
			return
		}
		resp = V1InitiateUploadResponse{
			Strategy:   domain.UploadStrategyChunked,
			VideoID:    session.VideoID,
			StorageKey: session.StorageKey,
			SessionID:  &session.SessionID,
			PartSize:   session.PartSize,
			TotalParts: session.TotalParts,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) writeInitiateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFilename),
		errors.Is(err, domain.ErrInvalidFileType),
		errors.Is(err, domain.ErrFileSizeTooBig),
		errors.Is(err, domain.ErrFileSizeTooSmall):
		h.logger.Error("invalid initiate upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("error initiating upload", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	}
}
