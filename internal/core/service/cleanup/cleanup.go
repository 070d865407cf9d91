package cleanup

import (
	"log/slog"

	"vodcore/internal/core/port"
)

type cleanupService struct {
	uow     port.UnitOfWork
	record  port.RecordService
	storage port.BlobStorage
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, record port.RecordService, storage port.BlobStorage, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:     uow,
		record:  record,
		storage: storage,
		logger:  logger,
	}
}
