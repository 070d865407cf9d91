package port

import (
	"context"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// UploadService is an interface to define the upload coordinator
type UploadService interface {
	ChooseStrategy(sizeBytes int64) domain.UploadStrategy
	InitiateSingle(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.SingleUploadTarget, error)
	InitiateChunked(ctx context.Context, filename string, contentType string, declaredSize int64) (*domain.ChunkedUploadInit, error)
	PartUploadTarget(ctx context.Context, sessionID uuid.UUID, partNumber int) (*domain.UploadPart, error)
	CompleteChunked(ctx context.Context, sessionID uuid.UUID, parts []domain.UploadPart) (*uuid.UUID, string, error)
	AbortChunked(ctx context.Context, sessionID uuid.UUID) error
	Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error)
}
