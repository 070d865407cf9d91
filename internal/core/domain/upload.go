package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadStrategy selects how a declared file size gets to the blob store
type UploadStrategy string

const (
	UploadStrategySingle  UploadStrategy = "single"
	UploadStrategyChunked UploadStrategy = "chunked"
)

// UploadSessionStatus represents the status of a chunked upload session
type UploadSessionStatus string

const (
	UploadSessionStatusOpen      UploadSessionStatus = "open"
	UploadSessionStatusCompleted UploadSessionStatus = "completed"
	UploadSessionStatusAborted   UploadSessionStatus = "aborted"
)

// UploadSession represents a chunked upload session. A session is either
// completed or aborted; an open session past ExpiresAt is swept by cleanup so
// the multipart upload never leaks in the blob store.
type UploadSession struct {
	ID               uuid.UUID
	VideoID          uuid.UUID
	ProviderUploadID string
	StorageKey       string
	PartSize         int64
	TotalParts       int
	DeclaredSize     int64
	ExpiresAt        time.Time
	Status           UploadSessionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UploadPart represents one part (chunk) of a chunked upload
type UploadPart struct {
	PartNumber   int
	ETag         string
	PresignedURL string
	Headers      map[string]string
	ExpiresAt    *time.Time
}
