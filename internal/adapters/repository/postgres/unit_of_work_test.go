package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/repository/postgres"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	videoRepo := postgres.NewSQLVideoRepository(dbConnection)
	sessionRepo := postgres.NewSQLUploadSessionRepository(dbConnection)

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()
		video := newTestVideo()
		session := domain.UploadSession{
			ID:               uuid.New(),
			VideoID:          video.ID,
			ProviderUploadID: "upload-id-1",
			StorageKey:       video.StorageKey,
			PartSize:         100 * 1024 * 1024,
			TotalParts:       3,
			DeclaredSize:     250 * 1024 * 1024,
			ExpiresAt:        time.Now().Add(time.Hour),
			Status:           domain.UploadSessionStatusOpen,
		}

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return u.UploadSessionRepo().Create(ctx, session)
		})

		//assert
		require.NoError(t, err)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, saved.VideoID)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		defer truncate()
		video := newTestVideo()

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.VideoRepo().Create(ctx, video); err != nil {
				return err
			}
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = videoRepo.FindByID(ctx, video.ID)
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
