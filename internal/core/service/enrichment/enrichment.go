package enrichment

import (
	"log/slog"

	"vodcore/internal/config"
	"vodcore/internal/core/port"
)

type enrichmentService struct {
	uow         port.UnitOfWork
	record      port.RecordService
	storage     port.BlobStorage
	assets      port.AssetProcessor
	transcriber port.Transcriber
	cfg         config.TranscriptionConfig
	logger      *slog.Logger
}

// NewEnrichmentService creates the worker-side task executor
func NewEnrichmentService(uow port.UnitOfWork, record port.RecordService, storage port.BlobStorage, assets port.AssetProcessor, transcriber port.Transcriber, cfg config.TranscriptionConfig, logger *slog.Logger) port.MessageService {
	return &enrichmentService{
		uow:         uow,
		record:      record,
		storage:     storage,
		assets:      assets,
		transcriber: transcriber,
		cfg:         cfg,
		logger:      logger,
	}
}
