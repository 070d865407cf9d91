package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/repository/postgres"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

func newTestVideo() domain.Video {
	return domain.Video{
		ID:               uuid.New(),
		Filename:         "lecture.mp4",
		MimeType:         "video/mp4",
		SizeBytes:        25 * 1024 * 1024,
		StorageKey:       "videos/1700000000000-abcdef123456.mp4",
		Bucket:           "videos",
		AssetStatus:      domain.AssetStatusNone,
		ProcessingStatus: domain.ProcessingStatusPending,
	}
}

func TestSqlVideoRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	videoRepo := postgres.NewSQLVideoRepository(dbConnection)
	prober := postgres.NewSchemaProber(dbConnection)

	fullCaps := func(t *testing.T) port.SchemaCapabilities {
		caps, err := prober.ProbeVideoColumns(ctx)
		require.NoError(t, err)
		return caps
	}

	t.Run("Create and FindByID - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()

		// Act
		err := videoRepo.Create(ctx, video)

		// Assert
		require.NoError(t, err)
		saved, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, saved.ID)
		require.Equal(t, video.Filename, saved.Filename)
		require.Equal(t, video.SizeBytes, saved.SizeBytes)
		require.Equal(t, domain.AssetStatusNone, saved.AssetStatus)
		require.Equal(t, domain.ProcessingStatusPending, saved.ProcessingStatus)
		require.Equal(t, domain.TranscriptStatusNone, saved.TranscriptStatus)
		require.False(t, saved.Processed)
	})

	t.Run("FindByID - Not found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		found, err := videoRepo.FindByID(ctx, uuid.New())

		// Assert
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
		require.Nil(t, found)
	})

	t.Run("Update - Partial update only touches set fields", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		assetID := "asset-123"
		assetStatus := domain.AssetStatusPreparing

		// Act
		err := videoRepo.Update(ctx, video.ID, domain.VideoUpdate{
			AssetID:     &assetID,
			AssetStatus: &assetStatus,
		}, fullCaps(t))

		// Assert
		require.NoError(t, err)
		updated, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, "asset-123", updated.AssetID)
		require.Equal(t, domain.AssetStatusPreparing, updated.AssetStatus)
		require.Equal(t, video.Filename, updated.Filename)
		require.Equal(t, domain.ProcessingStatusPending, updated.ProcessingStatus)
	})

	t.Run("Update - Full enrichment update", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		playbackID := "pb-abc123"
		thumbnail := "https://image.example.com/pb-abc123/thumbnail.jpg?time=10"
		stream := "https://stream.example.com/pb-abc123.m3u8"
		duration := 1832.4
		width := 1920
		height := 1080
		aspect := "16:9"
		processingReady := domain.ProcessingStatusReady
		processed := true

		// Act
		err := videoRepo.Update(ctx, video.ID, domain.VideoUpdate{
			PlaybackID:       &playbackID,
			ThumbnailURL:     &thumbnail,
			StreamURL:        &stream,
			DurationSec:      &duration,
			Width:            &width,
			Height:           &height,
			AspectRatio:      &aspect,
			ProcessingStatus: &processingReady,
			Processed:        &processed,
		}, fullCaps(t))

		// Assert
		require.NoError(t, err)
		updated, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, playbackID, updated.PlaybackID)
		require.Equal(t, thumbnail, updated.ThumbnailURL)
		require.Equal(t, stream, updated.StreamURL)
		require.InDelta(t, duration, updated.DurationSec, 0.01)
		require.Equal(t, 1920, updated.Width)
		require.Equal(t, 1080, updated.Height)
		require.True(t, updated.Processed)
	})

	t.Run("Update - Missing column is skipped when capabilities say so", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		transcript := "hello world"
		assetStatus := domain.AssetStatusReady
		caps := port.SchemaCapabilities{Columns: map[string]bool{
			"asset_status": true,
		}}

		// Act
		err := videoRepo.Update(ctx, video.ID, domain.VideoUpdate{
			TranscriptText: &transcript,
			AssetStatus:    &assetStatus,
		}, caps)

		// Assert
		require.NoError(t, err)
		updated, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AssetStatusReady, updated.AssetStatus)
		require.Empty(t, updated.TranscriptText)
	})

	t.Run("Update - Unknown column surfaces ErrUnknownColumn", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		transcript := "hello world"
		// Capabilities that wrongly claim a column the table does not have.
		caps := port.SchemaCapabilities{Columns: map[string]bool{
			"transcript_text": true,
		}}
		_, err := dbConnection.Exec(`ALTER TABLE videos DROP COLUMN transcript_text`)
		require.NoError(t, err)
		defer func() {
			_, err := dbConnection.Exec(`ALTER TABLE videos ADD COLUMN transcript_text TEXT`)
			require.NoError(t, err)
		}()

		// Act
		err = videoRepo.Update(ctx, video.ID, domain.VideoUpdate{TranscriptText: &transcript}, caps)

		// Assert
		require.ErrorIs(t, err, domain.ErrUnknownColumn)
	})

	t.Run("Update - No set fields is a no-op", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		// Act
		err := videoRepo.Update(ctx, video.ID, domain.VideoUpdate{}, fullCaps(t))

		// Assert
		require.NoError(t, err)
	})

	t.Run("Update - Not found", func(t *testing.T) {
		// Arrange
		truncate()
		assetID := "asset-void"

		// Act
		err := videoRepo.Update(ctx, uuid.New(), domain.VideoUpdate{AssetID: &assetID}, fullCaps(t))

		// Assert
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
	})

	t.Run("FindDuplicate - Returns oldest match on filename and size", func(t *testing.T) {
		// Arrange
		truncate()
		first := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, first))
		second := newTestVideo()
		second.ID = uuid.New()
		require.NoError(t, videoRepo.Create(ctx, second))

		other := newTestVideo()
		other.ID = uuid.New()
		other.Filename = "other.mp4"
		require.NoError(t, videoRepo.Create(ctx, other))

		// Act
		dup, err := videoRepo.FindDuplicate(ctx, "lecture.mp4", 25*1024*1024)

		// Assert
		require.NoError(t, err)
		require.Equal(t, first.ID, dup.ID)
	})

	t.Run("FindDuplicate - Not found on size mismatch", func(t *testing.T) {
		// Arrange
		truncate()
		video := newTestVideo()
		require.NoError(t, videoRepo.Create(ctx, video))

		// Act
		dup, err := videoRepo.FindDuplicate(ctx, "lecture.mp4", 1)

		// Assert
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
		require.Nil(t, dup)
	})
}

func TestSchemaProber(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	prober := postgres.NewSchemaProber(dbConnection)

	t.Run("ProbeVideoColumns - Reports migrated columns", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		caps, err := prober.ProbeVideoColumns(ctx)

		// Assert
		require.NoError(t, err)
		require.True(t, caps.Has("id"))
		require.True(t, caps.Has("asset_status"))
		require.True(t, caps.Has("transcript_text"))
		require.False(t, caps.Has("no_such_column"))
	})

	t.Run("ProbeVideoColumns - Reflects a dropped column", func(t *testing.T) {
		// Arrange
		truncate()
		_, err := dbConnection.Exec(`ALTER TABLE videos DROP COLUMN speaker_count`)
		require.NoError(t, err)
		defer func() {
			_, err := dbConnection.Exec(`ALTER TABLE videos ADD COLUMN speaker_count INT`)
			require.NoError(t, err)
		}()

		// Act
		caps, err := prober.ProbeVideoColumns(ctx)

		// Assert
		require.NoError(t, err)
		require.False(t, caps.Has("speaker_count"))
	})
}
