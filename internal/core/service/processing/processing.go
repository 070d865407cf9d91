package processing

import (
	"log/slog"

	"vodcore/internal/config"
	"vodcore/internal/core/port"
)

type processingService struct {
	record    port.RecordService
	uow       port.UnitOfWork
	storage   port.BlobStorage
	assets    port.AssetProcessor
	publisher port.TaskPublisher
	cfg       config.ProcessingConfig
	logger    *slog.Logger
}

// NewProcessingService creates a new processing orchestrator
func NewProcessingService(record port.RecordService, uow port.UnitOfWork, storage port.BlobStorage, assets port.AssetProcessor, publisher port.TaskPublisher, cfg config.ProcessingConfig, logger *slog.Logger) port.ProcessingService {
	return &processingService{
		record:    record,
		uow:       uow,
		storage:   storage,
		assets:    assets,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}
