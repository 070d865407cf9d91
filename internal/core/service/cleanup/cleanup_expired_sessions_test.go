package cleanup_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/repository"
	"vodcore/internal/adapters/storage"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
	"vodcore/internal/core/service/cleanup"
	"vodcore/internal/core/service/record"
)

func newCleanupService(recordMock *record.MockRecordService, uowMock *repository.MockUnitOfWork, storageMock *storage.MockStorage) port.CleanupService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cleanup.NewCleanupService(uowMock, recordMock, storageMock, logger)
}

func expiredSession() domain.UploadSession {
	return domain.UploadSession{
		ID:               uuid.New(),
		VideoID:          uuid.New(),
		ProviderUploadID: "mpu-1",
		StorageKey:       "videos/123-abc.mp4",
		ExpiresAt:        time.Now().Add(-time.Hour),
		Status:           domain.UploadSessionStatusOpen,
	}
}

func TestCleanupService_CleanupExpiredSessions(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockRecord := record.NewMockRecordService()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newCleanupService(mockRecord, mockUow, mockStorage)

	first := expiredSession()
	second := expiredSession()
	second.ProviderUploadID = "mpu-2"
	second.StorageKey = "videos/456-def.mp4"
	failed := domain.ProcessingStatusFailed

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, now).
		Return([]domain.UploadSession{first, second}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("UpdateStatus", ctx, first.ID, domain.UploadSessionStatusAborted).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("UpdateStatus", ctx, second.ID, domain.UploadSessionStatusAborted).Return(nil)
	mockStorage.On("AbortMultipartUpload", ctx, first.StorageKey, "mpu-1").Return(nil)
	mockStorage.On("AbortMultipartUpload", ctx, second.StorageKey, "mpu-2").Return(nil)
	mockRecord.On("Update", ctx, first.VideoID, domain.VideoUpdate{ProcessingStatus: &failed}).Return(nil)
	mockRecord.On("Update", ctx, second.VideoID, domain.VideoUpdate{ProcessingStatus: &failed}).Return(nil)

	// Act
	err := service.CleanupExpiredSessions(ctx, now)

	// Assert
	require.NoError(t, err)
	mockStorage.AssertExpectations(t)
	mockRecord.AssertExpectations(t)
	mockUow.GetUploadSessionRepoMock().AssertExpectations(t)
}

func TestCleanupService_CleanupExpiredSessions_NothingToSweep(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockRecord := record.NewMockRecordService()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newCleanupService(mockRecord, mockUow, mockStorage)

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, now).
		Return([]domain.UploadSession{}, nil)

	// Act
	err := service.CleanupExpiredSessions(ctx, now)

	// Assert
	require.NoError(t, err)
	mockStorage.AssertNotCalled(t, "AbortMultipartUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanupService_CleanupExpiredSessions_OneFailureDoesNotStopTheSweep(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockRecord := record.NewMockRecordService()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newCleanupService(mockRecord, mockUow, mockStorage)

	broken := expiredSession()
	healthy := expiredSession()
	healthy.ProviderUploadID = "mpu-2"
	failed := domain.ProcessingStatusFailed

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, now).
		Return([]domain.UploadSession{broken, healthy}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("UpdateStatus", ctx, broken.ID, domain.UploadSessionStatusAborted).Return(assert.AnError)
	mockUow.GetUploadSessionRepoMock().On("UpdateStatus", ctx, healthy.ID, domain.UploadSessionStatusAborted).Return(nil)
	mockStorage.On("AbortMultipartUpload", ctx, healthy.StorageKey, "mpu-2").Return(nil)
	mockRecord.On("Update", ctx, healthy.VideoID, domain.VideoUpdate{ProcessingStatus: &failed}).Return(nil)

	// Act
	err := service.CleanupExpiredSessions(ctx, now)

	// Assert
	require.NoError(t, err)
	// the broken session never reaches the video update
	mockRecord.AssertNotCalled(t, "Update", ctx, broken.VideoID, mock.Anything)
	mockStorage.AssertExpectations(t)
	mockRecord.AssertExpectations(t)
}

func TestCleanupService_CleanupExpiredSessions_ListFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Now()
	mockUow := repository.NewMockUnitOfWork()
	service := newCleanupService(record.NewMockRecordService(), mockUow, storage.NewMockStorage())

	mockUow.GetUploadSessionRepoMock().On("FindAllExpired", ctx, now).
		Return([]domain.UploadSession(nil), assert.AnError)

	// Act
	err := service.CleanupExpiredSessions(ctx, now)

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
}
