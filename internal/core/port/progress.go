package port

import (
	"context"

	"github.com/google/uuid"
)

// ProgressTracker records which parts of a chunked upload have been issued
// and completed. Keyed per session with TTL eviction; an external cache, not
// core state.
type ProgressTracker interface {
	SetPart(ctx context.Context, sessionID uuid.UUID, partNumber int) error
	Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}
