package port

import (
	"context"
	"io"
	"time"

	"vodcore/internal/core/domain"
)

// BlobStorage is an interface to define blob store interactions
type BlobStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	PresignedPutURL(ctx context.Context, key string, contentType string) (string, map[string]string, *time.Time, error)
	InitMultipartUpload(ctx context.Context, key string, contentType string) (string, error)
	PresignedPartURL(ctx context.Context, key string, uploadID string, partNumber int) (string, map[string]string, *time.Time, error)
	CompleteMultipartUpload(ctx context.Context, key string, uploadID string, parts []domain.UploadPart) (string, error)
	AbortMultipartUpload(ctx context.Context, key string, uploadID string) error
	ListPartsPaginated(ctx context.Context, key string, uploadID string, maxParts int, partNumberMarker int) ([]domain.UploadPart, int, error)
	PresignedReadURL(ctx context.Context, key string) (string, *time.Time, error)
	DeleteObject(ctx context.Context, key string) error
	Bucket() string
}
