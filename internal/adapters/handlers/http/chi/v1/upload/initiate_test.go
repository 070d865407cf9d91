package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vodcore/internal/adapters/handlers/http/chi"
	upload2 "vodcore/internal/adapters/handlers/http/chi/v1/upload"
	"vodcore/internal/adapters/handlers/http/chi/v1/video"
	webhook2 "vodcore/internal/adapters/handlers/http/chi/v1/webhook"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/service/processing"
	"vodcore/internal/core/service/record"
	"vodcore/internal/core/service/upload"
	"vodcore/internal/core/service/webhook"
)

func newTestRouter(mockService *upload.MockUploadService) http2.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploadHandler := upload2.NewUploadHandlerV1(mockService, discardLogger)
	videoHandler := video.NewVideoHandlerV1(processing.NewMockProcessingService(), record.NewMockRecordService(), discardLogger)
	webhookHandler := webhook2.NewWebhookHandlerV1(webhook.NewMockWebhookService(), discardLogger)
	return chi.NewRouter(discardLogger, uploadHandler, videoHandler, webhookHandler, "test")
}

func TestInitiateUploadV1(t *testing.T) {

	t.Run("success - single strategy", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		expiresAt := int64(1724400000)

		mockService := upload.NewMockUploadService()
		mockService.On("ChooseStrategy", int64(5000)).Return(domain.UploadStrategySingle)
		mockService.On("InitiateSingle", mock.Anything, "clip.mp4", "video/mp4", int64(5000)).
			Return(&domain.SingleUploadTarget{
				VideoID:      videoID,
				StorageKey:   "videos/123-abc.mp4",
				PresignedURL: "https://blob/put",
				Headers:      map[string]string{"Content-Type": "video/mp4"},
				ExpiresAt:    &expiresAt,
			}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "clip.mp4", ContentType: "video/mp4", SizeBytes: 5000,
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)

		var resp upload2.V1InitiateUploadResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, domain.UploadStrategySingle, resp.Strategy)
		assert.Equal(t, videoID, resp.VideoID)
		assert.Equal(t, "https://blob/put", resp.PresignedURL)
		require.NotNil(t, resp.ExpiresAt)
		assert.Equal(t, expiresAt, *resp.ExpiresAt)
		assert.Nil(t, resp.SessionID)
		mockService.AssertExpectations(t)
	})

	t.Run("success - chunked strategy", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		sessionID := uuid.New()
		declaredSize := int64(450 * 1024 * 1024)

		mockService := upload.NewMockUploadService()
		mockService.On("ChooseStrategy", declaredSize).Return(domain.UploadStrategyChunked)
		mockService.On("InitiateChunked", mock.Anything, "keynote.mp4", "video/mp4", declaredSize).
			Return(&domain.ChunkedUploadInit{
				SessionID:  sessionID,
				VideoID:    videoID,
				StorageKey: "videos/123-abc.mp4",
				UploadID:   "mpu-1",
				PartSize:   104857600,
				TotalParts: 5,
			}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "keynote.mp4", ContentType: "video/mp4", SizeBytes: declaredSize,
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)

		var resp upload2.V1InitiateUploadResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, domain.UploadStrategyChunked, resp.Strategy)
		require.NotNil(t, resp.SessionID)
		assert.Equal(t, sessionID, *resp.SessionID)
		assert.Equal(t, int64(104857600), resp.PartSize)
		assert.Equal(t, 5, resp.TotalParts)
		assert.Empty(t, resp.PresignedURL)
		mockService.AssertExpectations(t)
	})

	t.Run("error - missing size", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "clip.mp4", ContentType: "video/mp4",
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ChooseStrategy", mock.Anything)
	})

	t.Run("error - invalid file type", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("ChooseStrategy", int64(5000)).Return(domain.UploadStrategySingle)
		mockService.On("InitiateSingle", mock.Anything, "malware.exe", "application/octet-stream", int64(5000)).
			Return((*domain.SingleUploadTarget)(nil), domain.ErrInvalidFileType)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "malware.exe", ContentType: "application/octet-stream", SizeBytes: 5000,
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - file too big", func(t *testing.T) {
		// Arrange
		tooBig := int64(6 * 1024 * 1024 * 1024 * 1024)
		mockService := upload.NewMockUploadService()
		mockService.On("ChooseStrategy", tooBig).Return(domain.UploadStrategyChunked)
		mockService.On("InitiateChunked", mock.Anything, "archive.mp4", "video/mp4", tooBig).
			Return((*domain.ChunkedUploadInit)(nil), domain.ErrFileSizeTooBig)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "archive.mp4", ContentType: "video/mp4", SizeBytes: tooBig,
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - malformed body", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader([]byte("{not json")))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - service internal error", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("ChooseStrategy", int64(5000)).Return(domain.UploadStrategySingle)
		mockService.On("InitiateSingle", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return((*domain.SingleUploadTarget)(nil), assert.AnError)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(upload2.V1InitiateUploadRequest{
			Filename: "clip.mp4", ContentType: "video/mp4", SizeBytes: 5000,
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/initiate", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})
}
