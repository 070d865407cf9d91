package upload_test

import (
	"context"
	"sort"
	"testing"

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

func TestUploadService_CompleteChunked_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockTracker := progress.NewMockProgressTracker()
	service := newService(record.NewMockRecordService(), mockUow, mockStorage, mockTracker)

	videoID := uuid.New()
	session := openSession(videoID)

	// out of order on purpose, the service must sort before completing
	parts := []domain.UploadPart{
		{PartNumber: 3, ETag: "etag-3"},
		{PartNumber: 1, ETag: "etag-1"},
		{PartNumber: 4, ETag: "etag-4"},
		{PartNumber: 2, ETag: "etag-2"},
	}

	mockUow.GetUploadSessionRepoMock().On("FindByIDAndOpen", ctx, session.ID).Return(session, nil)
	mockStorage.On("CompleteMultipartUpload", ctx, session.StorageKey, "mpu-1", mock.MatchedBy(func(got []domain.UploadPart) bool {
		return sort.SliceIsSorted(got, func(i, j int) bool {
			return got[i].PartNumber < got[j].PartNumber
		}) && len(got) == 4
	})).Return("https://blob/videos/123-abc.mp4", nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetUploadSessionRepoMock().On("UpdateStatus", ctx, session.ID, domain.UploadSessionStatusCompleted).Return(nil)
	mockTracker.On("Clear", ctx, session.ID).Return(nil)

	// Act
	gotVideoID, location, err := service.CompleteChunked(ctx, session.ID, parts)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, gotVideoID)
	assert.Equal(t, videoID, *gotVideoID)
	assert.Equal(t, "https://blob/videos/123-abc.mp4", location)
	mockStorage.AssertExpectations(t)
	mockUow.GetUploadSessionRepoMock().AssertExpectations(t)
	mockTracker.AssertExpectations(t)
}

func TestUploadService_CompleteChunked_PartCountMismatch(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newService(record.NewMockRecordService(), mockUow, mockStorage, progress.NewMockProgressTracker())

	session := openSession(uuid.New())
	mockUow.GetUploadSessionRepoMock().On("FindByIDAndOpen", ctx, session.ID).Return(session, nil)

	// Act
	gotVideoID, _, err := service.CompleteChunked(ctx, session.ID, []domain.UploadPart{
		{PartNumber: 1, ETag: "etag-1"},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrMismatchNBParts)
	require.Nil(t, gotVideoID)
	mockStorage.AssertNotCalled(t, "CompleteMultipartUpload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_CompleteChunked_DuplicatePart(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newService(record.NewMockRecordService(), mockUow, mockStorage, progress.NewMockProgressTracker())

	session := openSession(uuid.New())
	mockUow.GetUploadSessionRepoMock().On("FindByIDAndOpen", ctx, session.ID).Return(session, nil)

	// Act
	gotVideoID, _, err := service.CompleteChunked(ctx, session.ID, []domain.UploadPart{
		{PartNumber: 1, ETag: "etag-1"},
		{PartNumber: 2, ETag: "etag-2"},
		{PartNumber: 2, ETag: "etag-2b"},
		{PartNumber: 4, ETag: "etag-4"},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrDuplicatePart)
	require.Nil(t, gotVideoID)
	mockStorage.AssertNotCalled(t, "CompleteMultipartUpload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_CompleteChunked_StorageFailureLeavesSessionOpen(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newService(record.NewMockRecordService(), mockUow, mockStorage, progress.NewMockProgressTracker())

	session := openSession(uuid.New())
	mockUow.GetUploadSessionRepoMock().On("FindByIDAndOpen", ctx, session.ID).Return(session, nil)
	mockStorage.On("CompleteMultipartUpload", ctx, session.StorageKey, "mpu-1", mock.Anything).
		Return("", assert.AnError)

	// Act
	gotVideoID, _, err := service.CompleteChunked(ctx, session.ID, []domain.UploadPart{
		{PartNumber: 1, ETag: "etag-1"},
		{PartNumber: 2, ETag: "etag-2"},
		{PartNumber: 3, ETag: "etag-3"},
		{PartNumber: 4, ETag: "etag-4"},
	})

	// Assert
	require.Error(t, err)
	require.Nil(t, gotVideoID)
	mockUow.GetUploadSessionRepoMock().AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_CompleteChunked_SessionNotOpen(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newService(record.NewMockRecordService(), mockUow, storage.NewMockStorage(), progress.NewMockProgressTracker())

	sessionID := uuid.New()
	mockUow.GetUploadSessionRepoMock().On("FindByIDAndOpen", ctx, sessionID).
		Return((*domain.UploadSession)(nil), domain.ErrSessionNotFound)

	// Act
	gotVideoID, _, err := service.CompleteChunked(ctx, sessionID, []domain.UploadPart{{PartNumber: 1, ETag: "e"}})

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	require.Nil(t, gotVideoID)
}
