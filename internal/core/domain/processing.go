package domain

import "github.com/google/uuid"

// SingleUploadTarget is the result of initiating a single-shot upload
type SingleUploadTarget struct {
	VideoID      uuid.UUID
	StorageKey   string
	PresignedURL string
	Headers      map[string]string
	ExpiresAt    *int64
}

// ChunkedUploadInit is the result of initiating a chunked upload
type ChunkedUploadInit struct {
	SessionID  uuid.UUID
	VideoID    uuid.UUID
	StorageKey string
	UploadID   string
	PartSize   int64
	TotalParts int
}

// ProcessRequest asks the orchestrator to process a completed upload
type ProcessRequest struct {
	VideoID      uuid.UUID
	StorageKey   string
	Filename     string
	SizeHint     int64
	MimeTypeHint string
}

// ProcessResult is the orchestrator's verdict for one process call. Degraded
// outcomes (processing, partial) are statuses here, not errors.
type ProcessResult struct {
	VideoID      uuid.UUID
	AssetID      string
	PlaybackID   string
	ThumbnailURL string
	StreamURL    string
	Status       ProcessingStatus
	Strategy     ProcessingStrategy
	SyncAttempts int
	Duplicate    bool
}

// ProcessingStrategy says whether the orchestrator blocked for readiness
type ProcessingStrategy string

const (
	ProcessingStrategySync  ProcessingStrategy = "sync"
	ProcessingStrategyAsync ProcessingStrategy = "async"
)
