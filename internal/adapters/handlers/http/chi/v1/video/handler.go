package video

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"vodcore/internal/core/port"
)

// HandlerV1 is the handler for v1 video routes
type HandlerV1 struct {
	processingService port.ProcessingService
	recordService     port.RecordService
	logger            *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(processing port.ProcessingService, record port.RecordService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		processingService: processing,
		recordService:     record,
		logger:            logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{videoID}/process", h.ProcessVideoV1)
	router.Get("/{videoID}", h.GetVideoV1)

	return router
}
