package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// UploadSessionRepository is an interface to interact with upload session repositories
type UploadSessionRepository interface {
	Create(ctx context.Context, session domain.UploadSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error)
	FindByIDAndOpen(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UploadSessionStatus) error
	UpdateExpiresAt(ctx context.Context, id uuid.UUID, expiresAt time.Time) error
	FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error)
}
