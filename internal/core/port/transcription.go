package port

import (
	"context"

	"vodcore/internal/core/domain"
)

// TranscriptionProvider is one interchangeable speech-to-text backend. A
// provider that lacks credentials returns (false, reason) from Configured and
// is skipped by the chain without being called.
type TranscriptionProvider interface {
	Name() string
	Configured() (bool, string)
	Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error)
}

// Transcriber is the provider chain as seen by the orchestrator and the
// enrichment worker
type Transcriber interface {
	Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error)
}
