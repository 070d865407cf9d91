package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vodcore/internal/config"
	"vodcore/internal/core/domain"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	core   *minio.Core
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	core := minio.Core{Client: client}
	return &Adapter{client: client, config: cfg, core: &core, logger: logger}, nil
}

// Bucket returns the configured bucket name
func (a *Adapter) Bucket() string {
	return a.config.BucketName
}

// Put uploads a body server-side, used for small internal writes like
// generated caption files
func (a *Adapter) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	info, err := a.client.PutObject(ctx, a.config.BucketName, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return info.Key, nil
}

// PresignedPutURL generates a presigned url for a single-request upload
func (a *Adapter) PresignedPutURL(ctx context.Context, key string, contentType string) (string, map[string]string, *time.Time, error) {

	requestHeaders := make(http.Header)
	requestHeaders.Set("Content-Type", contentType)

	presignedURL, err := a.client.PresignHeader(ctx, http.MethodPut, a.config.BucketName, key, a.config.PutPresignedDuration, nil, requestHeaders)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PutPresignedDuration)

	return presignedURL.String(), a.headerToMap(requestHeaders), &expiresAt, nil
}

// InitMultipartUpload inits a multi part upload
func (a *Adapter) InitMultipartUpload(ctx context.Context, key string, contentType string) (string, error) {

	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}
	uploadID, err := a.core.NewMultipartUpload(ctx, a.config.BucketName, key, opts)
	if err != nil {
		return "", fmt.Errorf("failed to init multipart upload: %w", err)
	}
	return uploadID, nil
}

// PresignedPartURL generates a presigned url for one part of a multipart upload
func (a *Adapter) PresignedPartURL(ctx context.Context, key string, uploadID string, partNumber int) (string, map[string]string, *time.Time, error) {
	reqParams := make(url.Values)
	reqParams.Set("partNumber", fmt.Sprintf("%d", partNumber))
	reqParams.Set("uploadId", uploadID)

	presignedURL, err := a.core.PresignHeader(ctx, http.MethodPut, a.config.BucketName, key, a.config.PartPresignedDuration, reqParams, nil)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to generate presigned URL for part: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PartPresignedDuration)
	return presignedURL.String(), nil, &expiresAt, nil
}

// CompleteMultipartUpload marks the minio multipart as complete and returns
// the object location. Parts must already be sorted by part number.
func (a *Adapter) CompleteMultipartUpload(ctx context.Context, key string, uploadID string, parts []domain.UploadPart) (string, error) {

	completeParts := make([]minio.CompletePart, 0, len(parts))
	for _, part := range parts {
		cleanETag := strings.Trim(part.ETag, "\"")

		completeParts = append(completeParts, minio.CompletePart{
			PartNumber: part.PartNumber,
			ETag:       cleanETag,
		})
	}

	opts := minio.PutObjectOptions{
		SendContentMd5: false,
	}

	info, err := a.core.CompleteMultipartUpload(ctx, a.config.BucketName, key, uploadID, completeParts, opts)
	if err != nil {
		return "", fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	return info.Location, nil
}

// AbortMultipartUpload aborts a multipart upload. An upload the provider no
// longer knows about counts as already aborted.
func (a *Adapter) AbortMultipartUpload(ctx context.Context, key string, uploadID string) error {
	err := a.core.AbortMultipartUpload(ctx, a.config.BucketName, key, uploadID)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchUpload" {
			a.logger.Info("multipart upload already gone",
				slog.String("key", key),
				slog.String("uploadID", uploadID))
			return nil
		}
		return fmt.Errorf("failed to abort multipart upload: %w", err)
	}

	a.logger.Info("multipart upload aborted",
		slog.String("key", key),
		slog.String("uploadID", uploadID))

	return nil
}

// ListPartsPaginated lists uploaded parts with pagination
func (a *Adapter) ListPartsPaginated(ctx context.Context, key string, uploadID string, maxParts int, partNumberMarker int) ([]domain.UploadPart, int, error) {
	if maxParts <= 0 || maxParts > 1000 {
		maxParts = 1000 //max size for minio
	}

	result, err := a.core.ListObjectParts(ctx, a.config.BucketName, key, uploadID, partNumberMarker, maxParts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}

	parts := make([]domain.UploadPart, 0, len(result.ObjectParts))
	for _, part := range result.ObjectParts {
		cleanETag := strings.Trim(part.ETag, "\"")
		parts = append(parts, domain.UploadPart{
			PartNumber: part.PartNumber,
			ETag:       cleanETag,
		})
	}

	return parts, result.NextPartNumberMarker, nil
}

// PresignedReadURL generates a presigned GET url, handed to the asset
// provider as the ingest input
func (a *Adapter) PresignedReadURL(ctx context.Context, key string) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, key, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.DownloadSignedURLDuration)

	return presignedURL.String(), &expiresAt, nil
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, key string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return nil
}

func (a *Adapter) headerToMap(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if len(values) > 0 {
			result[key] = values[0]
		}
	}
	return result
}
