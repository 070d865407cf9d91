package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// ProcessingService is an interface to define the processing orchestrator
type ProcessingService interface {
	Process(ctx context.Context, req domain.ProcessRequest) (*domain.ProcessResult, error)
}

// WebhookService is an interface to define the webhook state machine
type WebhookService interface {
	HandleEvent(ctx context.Context, rawBody []byte, signatureHeader string) domain.WebhookOutcome
}

// RecordService is the single choke point for all video-record mutations
type RecordService interface {
	CreateMinimal(ctx context.Context, video domain.Video) (*domain.Video, error)
	Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate) error
	FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

// CleanupService is an interface to define the session cleanup sweeper
type CleanupService interface {
	CleanupExpiredSessions(ctx context.Context, now time.Time) error
}
