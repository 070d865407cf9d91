package cleanup

import (
	"context"
	"time"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// CleanupExpiredSessions sweeps open sessions past their TTL: aborts the
// multipart upload in the blob store, marks the session aborted and the
// video failed. An open multipart session that nobody will ever complete is
// leaked storage, so this runs on a timer.
func (c *cleanupService) CleanupExpiredSessions(ctx context.Context, now time.Time) error {

	sessions, err := c.uow.UploadSessionRepo().FindAllExpired(ctx, now)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		txErr := c.uow.Execute(ctx, func(uow port.UnitOfWork) error {
			if execErr := uow.UploadSessionRepo().UpdateStatus(ctx, session.ID, domain.UploadSessionStatusAborted); execErr != nil {
				return execErr
			}
			return c.storage.AbortMultipartUpload(ctx, session.StorageKey, session.ProviderUploadID)
		})
		if txErr != nil {
			c.logger.Error("failed to clean up expired session", "session_id", session.ID, "error", txErr)
			continue
		}

		failed := domain.ProcessingStatusFailed
		if updErr := c.record.Update(ctx, session.VideoID, domain.VideoUpdate{ProcessingStatus: &failed}); updErr != nil {
			c.logger.Error("failed to mark video failed for expired session", "video_id", session.VideoID, "error", updErr)
		}
	}

	c.logger.Info("expired session sweep completed", "count", len(sessions))
	return nil
}
