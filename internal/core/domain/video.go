package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetStatus is the remote transcoding asset lifecycle status
type AssetStatus string

const (
	AssetStatusNone      AssetStatus = "none"
	AssetStatusCreating  AssetStatus = "creating"
	AssetStatusPreparing AssetStatus = "preparing"
	AssetStatusReady     AssetStatus = "ready"
	AssetStatusErrored   AssetStatus = "errored"
)

// ProcessingStatus is the orchestrator's overall verdict for a video,
// distinct from the remote asset's own status
type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusReady      ProcessingStatus = "ready"
	ProcessingStatusPartial    ProcessingStatus = "partial"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

// TranscriptStatus is the transcript enrichment lifecycle status
type TranscriptStatus string

const (
	TranscriptStatusNone        TranscriptStatus = "none"
	TranscriptStatusPending     TranscriptStatus = "pending"
	TranscriptStatusProcessing  TranscriptStatus = "processing"
	TranscriptStatusCompleted   TranscriptStatus = "completed"
	TranscriptStatusFailed      TranscriptStatus = "failed"
	TranscriptStatusUnavailable TranscriptStatus = "unavailable"
)

// Video is the central persisted entity. The row exists as soon as an upload
// is accepted, before any remote asset is created, so consumers only ever see
// intermediate statuses, never a missing record.
type Video struct {
	ID         uuid.UUID
	Filename   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	Bucket     string

	AssetID          string
	PlaybackID       string
	AssetStatus      AssetStatus
	ProcessingStatus ProcessingStatus
	ThumbnailURL     string
	StreamURL        string
	DownloadURL      string
	DurationSec      float64
	Width            int
	Height           int
	AspectRatio      string
	BitrateKbps      int

	TranscriptText     string
	TranscriptStatus   TranscriptStatus
	CaptionVTTURL      string
	CaptionSRTURL      string
	TranscriptionJobID string
	TranscriptProvider string
	SpeakerCount       int

	Processed bool
	Public    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VideoUpdate is a partial update: only non-nil fields are written. Every
// writer races on the same row, so whole-row overwrites are never used.
type VideoUpdate struct {
	AssetID          *string
	PlaybackID       *string
	AssetStatus      *AssetStatus
	ProcessingStatus *ProcessingStatus
	ThumbnailURL     *string
	StreamURL        *string
	DownloadURL      *string
	DurationSec      *float64
	Width            *int
	Height           *int
	AspectRatio      *string
	BitrateKbps      *int

	TranscriptText     *string
	TranscriptStatus   *TranscriptStatus
	CaptionVTTURL      *string
	CaptionSRTURL      *string
	TranscriptionJobID *string
	TranscriptProvider *string
	SpeakerCount       *int

	Processed *bool
	Public    *bool
}

// IsZero reports whether no field of the update is set
func (u VideoUpdate) IsZero() bool {
	return u == VideoUpdate{}
}

// Columns returns the column names of the fields set on the update, in a
// stable order. The names match the videos table schema and drive both the
// update statement and the schema-capability check.
func (u VideoUpdate) Columns() []string {
	var cols []string
	add := func(set bool, name string) {
		if set {
			cols = append(cols, name)
		}
	}
	add(u.AssetID != nil, "asset_id")
	add(u.PlaybackID != nil, "playback_id")
	add(u.AssetStatus != nil, "asset_status")
	add(u.ProcessingStatus != nil, "processing_status")
	add(u.ThumbnailURL != nil, "thumbnail_url")
	add(u.StreamURL != nil, "stream_url")
	add(u.DownloadURL != nil, "download_url")
	add(u.DurationSec != nil, "duration_sec")
	add(u.Width != nil, "width")
	add(u.Height != nil, "height")
	add(u.AspectRatio != nil, "aspect_ratio")
	add(u.BitrateKbps != nil, "bitrate_kbps")
	add(u.TranscriptText != nil, "transcript_text")
	add(u.TranscriptStatus != nil, "transcript_status")
	add(u.CaptionVTTURL != nil, "caption_vtt_url")
	add(u.CaptionSRTURL != nil, "caption_srt_url")
	add(u.TranscriptionJobID != nil, "transcription_job_id")
	add(u.TranscriptProvider != nil, "transcript_provider")
	add(u.SpeakerCount != nil, "speaker_count")
	add(u.Processed != nil, "processed")
	add(u.Public != nil, "public")
	return cols
}

// Value returns the value set for a column name, for building statements
func (u VideoUpdate) Value(column string) any {
	switch column {
	case "asset_id":
		return *u.AssetID
	case "playback_id":
		return *u.PlaybackID
	case "asset_status":
		return *u.AssetStatus
	case "processing_status":
		return *u.ProcessingStatus
	case "thumbnail_url":
		return *u.ThumbnailURL
	case "stream_url":
		return *u.StreamURL
	case "download_url":
		return *u.DownloadURL
	case "duration_sec":
		return *u.DurationSec
	case "width":
		return *u.Width
	case "height":
		return *u.Height
	case "aspect_ratio":
		return *u.AspectRatio
	case "bitrate_kbps":
		return *u.BitrateKbps
	case "transcript_text":
		return *u.TranscriptText
	case "transcript_status":
		return *u.TranscriptStatus
	case "caption_vtt_url":
		return *u.CaptionVTTURL
	case "caption_srt_url":
		return *u.CaptionSRTURL
	case "transcription_job_id":
		return *u.TranscriptionJobID
	case "transcript_provider":
		return *u.TranscriptProvider
	case "speaker_count":
		return *u.SpeakerCount
	case "processed":
		return *u.Processed
	case "public":
		return *u.Public
	}
	return nil
}
