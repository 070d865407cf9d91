package muxcaptions_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/assetproc"
	"vodcore/internal/adapters/transcription/muxcaptions"
	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/service/record"
)

func newProvider(assets *assetproc.MockAssetProcessor, recordMock *record.MockRecordService, tokenID string) *muxcaptions.Provider {
	return muxcaptions.NewProvider(assets, recordMock,
		config.AssetAPIConfig{TokenID: tokenID},
		config.TranscriptionConfig{Language: "en"},
	)
}

func TestProvider_Configured(t *testing.T) {
	t.Run("with credentials", func(t *testing.T) {
		ok, _ := newProvider(assetproc.NewMockAssetProcessor(), record.NewMockRecordService(), "token-id").Configured()
		assert.True(t, ok)
	})

	t.Run("without credentials", func(t *testing.T) {
		ok, reason := newProvider(assetproc.NewMockAssetProcessor(), record.NewMockRecordService(), "").Configured()
		assert.False(t, ok)
		assert.Equal(t, "missing asset api credentials", reason)
	})
}

func TestProvider_Transcribe(t *testing.T) {
	ctx := context.Background()

	t.Run("success - track requested", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		mockAssets := assetproc.NewMockAssetProcessor()
		mockRecord := record.NewMockRecordService()
		provider := newProvider(mockAssets, mockRecord, "token-id")

		mockRecord.On("Get", ctx, videoID).Return(&domain.Video{ID: videoID, AssetID: "asset-1"}, nil)
		mockAssets.On("RequestCaptions", ctx, "asset-1", "en").
			Return(&domain.CaptionTrack{ID: "track-9", Kind: "text", Language: "en"}, nil)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{VideoID: videoID})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "track-9", result.JobID)
		assert.Equal(t, domain.TranscriptionStatusSubmitted, result.Status)
		assert.True(t, result.Async)
		mockAssets.AssertExpectations(t)
	})

	t.Run("success - caller language wins", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		mockAssets := assetproc.NewMockAssetProcessor()
		mockRecord := record.NewMockRecordService()
		provider := newProvider(mockAssets, mockRecord, "token-id")

		mockRecord.On("Get", ctx, videoID).Return(&domain.Video{ID: videoID, AssetID: "asset-1"}, nil)
		mockAssets.On("RequestCaptions", ctx, "asset-1", "fr").
			Return(&domain.CaptionTrack{ID: "track-9"}, nil)

		// Act
		_, err := provider.Transcribe(ctx, domain.TranscriptionRequest{
			VideoID: videoID,
			Options: domain.TranscriptionOptions{Language: "fr"},
		})

		// Assert
		require.NoError(t, err)
		mockAssets.AssertExpectations(t)
	})

	t.Run("error - video has no asset", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		mockAssets := assetproc.NewMockAssetProcessor()
		mockRecord := record.NewMockRecordService()
		provider := newProvider(mockAssets, mockRecord, "token-id")

		mockRecord.On("Get", ctx, videoID).Return(&domain.Video{ID: videoID}, nil)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{VideoID: videoID})

		// Assert
		require.Error(t, err)
		require.Nil(t, result)
		mockAssets.AssertNotCalled(t, "RequestCaptions", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - video lookup fails", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		mockRecord := record.NewMockRecordService()
		provider := newProvider(assetproc.NewMockAssetProcessor(), mockRecord, "token-id")

		mockRecord.On("Get", ctx, videoID).Return((*domain.Video)(nil), assert.AnError)

		// Act
		result, err := provider.Transcribe(ctx, domain.TranscriptionRequest{VideoID: videoID})

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
		require.Nil(t, result)
	})
}
