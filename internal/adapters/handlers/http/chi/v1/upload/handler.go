package upload

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"vodcore/internal/core/port"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/initiate", h.InitiateUploadV1)
	router.Post("/sessions/{sessionID}/parts/{partNumber}", h.PartUploadTargetV1)
	router.Get("/sessions/{sessionID}/progress", h.GetProgressV1)
	router.Post("/sessions/{sessionID}/complete", h.CompleteUploadV1)
	router.Delete("/sessions/{sessionID}", h.AbortUploadV1)

	return router
}
