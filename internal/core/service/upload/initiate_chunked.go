package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// InitiateChunked validates the declared size, creates the intake video row,
// opens a multipart upload in the blob store and persists the session, the
// last two atomically
func (u *uploadService) InitiateChunked(ctx context.Context, filename string, contentType string, declaredSize int64) (*domain.ChunkedUploadInit, error) {

	mimeType, err := u.validateVideoFile(filename, contentType)
	if err != nil {
		return nil, err
	}
	if declaredSize > u.cfg.MaxFileSize {
		return nil, domain.ErrFileSizeTooBig
	}
	if declaredSize < u.cfg.ChunkedThreshold {
		return nil, domain.ErrFileSizeTooSmall
	}

	key := u.storageKey(filename)
	partSize := u.partSizeFor(declaredSize)
	totalParts := int((declaredSize + partSize - 1) / partSize)

	video, err := u.record.CreateMinimal(ctx, domain.Video{
		Filename:   filename,
		MimeType:   mimeType,
		SizeBytes:  declaredSize,
		StorageKey: key,
		Bucket:     u.storage.Bucket(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create video record: %w", err)
	}

	sessionID := uuid.New()
	uploadID := ""

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var storeErr error
		uploadID, storeErr = u.storage.InitMultipartUpload(ctx, key, mimeType)
		if storeErr != nil {
			return storeErr
		}

		return uow.UploadSessionRepo().Create(ctx, domain.UploadSession{
			ID:               sessionID,
			VideoID:          video.ID,
			ProviderUploadID: uploadID,
			StorageKey:       key,
			PartSize:         partSize,
			TotalParts:       totalParts,
			DeclaredSize:     declaredSize,
			ExpiresAt:        time.Now().Add(u.cfg.SessionTTL),
			Status:           domain.UploadSessionStatusOpen,
		})
	})
	if txErr != nil {
		// without a session row the sweeper can never find this upload, so
		// the remote multipart session must be released here
		if uploadID != "" {
			if abortErr := u.storage.AbortMultipartUpload(ctx, key, uploadID); abortErr != nil {
				u.logger.Error("failed to abort orphaned multipart upload", "upload_id", uploadID, "error", abortErr)
			}
		}
		failed := domain.ProcessingStatusFailed
		if updErr := u.record.Update(ctx, video.ID, domain.VideoUpdate{ProcessingStatus: &failed}); updErr != nil {
			u.logger.Error("failed to mark video failed after init error", "video_id", video.ID, "error", updErr)
		}
		return nil, fmt.Errorf("could not start chunked upload: %w", txErr)
	}

	return &domain.ChunkedUploadInit{
		SessionID:  sessionID,
		VideoID:    video.ID,
		StorageKey: key,
		UploadID:   uploadID,
		PartSize:   partSize,
		TotalParts: totalParts,
	}, nil
}
