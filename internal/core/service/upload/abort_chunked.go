package upload

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// AbortChunked aborts a chunked upload session. Idempotent: aborting an
// already aborted session, or one whose multipart upload expired server-side,
// is not an error.
func (u *uploadService) AbortChunked(ctx context.Context, sessionID uuid.UUID) error {

	session, err := u.uow.UploadSessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return err
	}

	switch session.Status {
	case domain.UploadSessionStatusAborted:
		return nil
	case domain.UploadSessionStatusCompleted:
		return domain.ErrSessionClosed
	}

	if abortErr := u.storage.AbortMultipartUpload(ctx, session.StorageKey, session.ProviderUploadID); abortErr != nil {
		return abortErr
	}

	failed := domain.ProcessingStatusFailed
	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.UploadSessionRepo().UpdateStatus(ctx, sessionID, domain.UploadSessionStatusAborted)
	})
	if txErr != nil {
		return txErr
	}

	if updErr := u.record.Update(ctx, session.VideoID, domain.VideoUpdate{ProcessingStatus: &failed}); updErr != nil {
		if !errors.Is(updErr, domain.ErrVideoNotFound) {
			u.logger.Error("failed to mark video failed after abort", "video_id", session.VideoID, "error", updErr)
		}
	}

	if clearErr := u.tracker.Clear(ctx, sessionID); clearErr != nil {
		u.logger.Warn("failed to clear progress", "session_id", sessionID, "error", clearErr)
	}

	return nil
}
