package upload_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/progress"
	"vodcore/internal/adapters/repository"
	"vodcore/internal/adapters/storage"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/service/record"
)

func TestUploadService_InitiateSingle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRecord := record.NewMockRecordService()
	mockStorage := storage.NewMockStorage()
	service := newService(mockRecord, repository.NewMockUnitOfWork(), mockStorage, progress.NewMockProgressTracker())

	videoID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)
	headers := map[string]string{"Content-Type": "video/mp4"}

	mockStorage.On("Bucket").Return("videos")
	mockRecord.On("CreateMinimal", ctx, mock.MatchedBy(func(v domain.Video) bool {
		return v.Filename == "clip.mp4" && v.MimeType == "video/mp4" && v.SizeBytes == int64(1024)
	})).Return(&domain.Video{ID: videoID, Filename: "clip.mp4"}, nil)
	mockStorage.On("PresignedPutURL", ctx, mock.Anything, "video/mp4").
		Return("https://blob/put", headers, &expiresAt, nil)

	// Act
	target, err := service.InitiateSingle(ctx, "clip.mp4", "video/mp4", 1024)

	// Assert
	require.NoError(t, err)
	require.Equal(t, videoID, target.VideoID)
	require.Equal(t, "https://blob/put", target.PresignedURL)
	require.Equal(t, headers, target.Headers)
	require.NotNil(t, target.ExpiresAt)
	assert.Equal(t, expiresAt.Unix(), *target.ExpiresAt)
	mockRecord.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestUploadService_InitiateSingle_MissingFilename(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRecord := record.NewMockRecordService()
	service := newService(mockRecord, repository.NewMockUnitOfWork(), storage.NewMockStorage(), progress.NewMockProgressTracker())

	// Act
	target, err := service.InitiateSingle(ctx, "  ", "video/mp4", 1024)

	// Assert
	assert.ErrorIs(t, err, domain.ErrMissingFilename)
	require.Nil(t, target)
	mockRecord.AssertNotCalled(t, "CreateMinimal", mock.Anything, mock.Anything)
}

func TestUploadService_InitiateSingle_InvalidType(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newService(record.NewMockRecordService(), repository.NewMockUnitOfWork(), storage.NewMockStorage(), progress.NewMockProgressTracker())

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"unsupported mime", "malware.exe", "application/octet-stream"},
		{"extension mismatch", "clip.avi", "video/mp4"},
		{"no extension", "clip", "video/mp4"},
		{"garbage content type", "clip.mp4", ";;;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			target, err := service.InitiateSingle(ctx, tt.filename, tt.contentType, 1024)

			// Assert
			assert.ErrorIs(t, err, domain.ErrInvalidFileType)
			require.Nil(t, target)
		})
	}
}

func TestUploadService_InitiateSingle_TooBig(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRecord := record.NewMockRecordService()
	service := newService(mockRecord, repository.NewMockUnitOfWork(), storage.NewMockStorage(), progress.NewMockProgressTracker())

	// Act
	target, err := service.InitiateSingle(ctx, "clip.mp4", "video/mp4", defaultCfg.MaxFileSize+1)

	// Assert
	assert.ErrorIs(t, err, domain.ErrFileSizeTooBig)
	require.Nil(t, target)
	mockRecord.AssertNotCalled(t, "CreateMinimal", mock.Anything, mock.Anything)
}
