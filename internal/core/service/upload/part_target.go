package upload

import (
	"context"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

// PartUploadTarget returns a presigned URL for one part. Stateless: callable
// any number of times for the same part number.
func (u *uploadService) PartUploadTarget(ctx context.Context, sessionID uuid.UUID, partNumber int) (*domain.UploadPart, error) {

	session, err := u.uow.UploadSessionRepo().FindByIDAndOpen(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if partNumber < 1 || partNumber > session.TotalParts {
		return nil, domain.ErrInvalidPartNumber
	}

	presignedURL, headers, expiresAt, err := u.storage.PresignedPartURL(ctx, session.StorageKey, session.ProviderUploadID, partNumber)
	if err != nil {
		return nil, err
	}

	if trackErr := u.tracker.SetPart(ctx, sessionID, partNumber); trackErr != nil {
		u.logger.Warn("failed to track part progress", "session_id", sessionID, "part", partNumber, "error", trackErr)
	}

	return &domain.UploadPart{
		PartNumber:   partNumber,
		PresignedURL: presignedURL,
		Headers:      headers,
		ExpiresAt:    expiresAt,
	}, nil
}

// Progress returns the part numbers already issued/acknowledged for a session
func (u *uploadService) Progress(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	if _, err := u.uow.UploadSessionRepo().FindByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return u.tracker.Progress(ctx, sessionID)
}
