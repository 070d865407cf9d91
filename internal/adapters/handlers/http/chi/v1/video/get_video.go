package video

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// V1VideoResponse is the public view of a video record
type V1VideoResponse struct {
	ID               uuid.UUID               `json:"id"`
	Filename         string                  `json:"filename"`
	MimeType         string                  `json:"mime_type"`
	SizeBytes        int64                   `json:"size_bytes"`
	AssetID          string                  `json:"asset_id,omitempty"`
	PlaybackID       string                  `json:"playback_id,omitempty"`
	AssetStatus      domain.AssetStatus      `json:"asset_status"`
	ProcessingStatus domain.ProcessingStatus `json:"processing_status"`
	ThumbnailURL     string                  `json:"thumbnail_url,omitempty"`
	StreamURL        string                  `json:"stream_url,omitempty"`
	DownloadURL      string                  `json:"download_url,omitempty"`
	DurationSec      float64                 `json:"duration_sec,omitempty"`
	Width            int                     `json:"width,omitempty"`
	Height           int                     `json:"height,omitempty"`
	AspectRatio      string                  `json:"aspect_ratio,omitempty"`
	TranscriptText   string                  `json:"transcript_text,omitempty"`
	TranscriptStatus domain.TranscriptStatus `json:"transcript_status"`
	CaptionVTTURL    string                  `json:"caption_vtt_url,omitempty"`
	CaptionSRTURL    string                  `json:"caption_srt_url,omitempty"`
	Processed        bool                    `json:"processed"`
	Public           bool                    `json:"public"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func (h *HandlerV1) GetVideoV1(w http.ResponseWriter, r *http.Request) {

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

	resp := V1VideoResponse{
		ID:               record.ID,
		Filename:         record.Filename,
		MimeType:         record.MimeType,
		SizeBytes:        record.SizeBytes,
		AssetID:          record.AssetID,
		PlaybackID:       record.PlaybackID,
		AssetStatus:      record.AssetStatus,
		ProcessingStatus: record.ProcessingStatus,
		ThumbnailURL:     record.ThumbnailURL,
		StreamURL:        record.StreamURL,
		DownloadURL:      record.DownloadURL,
		DurationSec:      record.DurationSec,
		Width:            record.Width,
		Height:           record.Height,
		AspectRatio:      record.AspectRatio,
		TranscriptText:   record.TranscriptText,
		TranscriptStatus: record.TranscriptStatus,
		CaptionVTTURL:    record.CaptionVTTURL,
		CaptionSRTURL:    record.CaptionSRTURL,
		Processed:        record.Processed,
		Public:           record.Public,
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
