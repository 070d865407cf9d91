package video

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1ProcessVideoResponse reports what the orchestrator did with the upload
type V1ProcessVideoResponse struct {
	VideoID      uuid.UUID                 `json:"video_id"`
	AssetID      string                    `json:"asset_id,omitempty"`
	PlaybackID   string                    `json:"playback_id,omitempty"`
	ThumbnailURL string                    `json:"thumbnail_url,omitempty"`
	StreamURL    string                    `json:"stream_url,omitempty"`
	Status       domain.ProcessingStatus   `json:"status"`
	Strategy     domain.ProcessingStrategy `json:"strategy"`
	Duplicate    bool                      `json:"duplicate"`
}

func (h *HandlerV1) ProcessVideoV1(w http.ResponseWriter, r *http.Request) {

	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	record, err := h.recordService.Get(r.Context(), videoID)
	switch {
	case errors.Is(err, domain.ErrVideoNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error loading video", "error", err, "video_id", videoID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	result, err := h.processingService.Process(r.Context(), domain.ProcessRequest{
		VideoID:      record.ID,
		StorageKey:   record.StorageKey,
		Filename:     record.Filename,
		SizeHint:     record.SizeBytes,
		MimeTypeHint: record.MimeType,
	})
	if err != nil {
		h.logger.Error("error processing video", "error", err, "video_id", videoID)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ProcessVideoResponse{
		VideoID:      result.VideoID,
		AssetID:      result.AssetID,
		PlaybackID:   result.PlaybackID,
		ThumbnailURL: result.ThumbnailURL,
		StreamURL:    result.StreamURL,
		Status:       result.Status,
		Strategy:     result.Strategy,
		Duplicate:    result.Duplicate,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
