package port

import (
	"context"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// TaskRepository is an interface to define enrichment task persistence
type TaskRepository interface {
	Create(ctx context.Context, task domain.EnrichmentTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.EnrichmentTask, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}
