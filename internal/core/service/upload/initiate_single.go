package upload

import (
	"context"
	"fmt"

	"vodcore/internal/core/domain"
)

// InitiateSingle validates the declared file, creates the intake video row
// and returns a presigned PUT target for a single-shot upload
func (u *uploadService) InitiateSingle(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.SingleUploadTarget, error) {

	mimeType, err := u.validateVideoFile(filename, contentType)
	if err != nil {
		return nil, err
	}
	if sizeBytes > u.cfg.MaxFileSize {
		return nil, domain.ErrFileSizeTooBig
	}

	key := u.storageKey(filename)

	video, err := u.record.CreateMinimal(ctx, domain.Video{
		Filename:   filename,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		StorageKey: key,
		Bucket:     u.storage.Bucket(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create video record: %w", err)
	}

	presignedURL, headers, expiresAt, err := u.storage.PresignedPutURL(ctx, key, mimeType)
	if err != nil {
		return nil, fmt.Errorf("could not presign upload: %w", err)
	}

	target := &domain.SingleUploadTarget{
		VideoID:      video.ID,
		StorageKey:   key,
		PresignedURL: presignedURL,
		Headers:      headers,
	}
	if expiresAt != nil {
		unix := expiresAt.Unix()
		target.ExpiresAt = &unix
	}
	return target, nil
}
