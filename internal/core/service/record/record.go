package record

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type recordService struct {
	uow    port.UnitOfWork
	prober port.SchemaProber
	logger *slog.Logger

	mu   sync.RWMutex
	caps port.SchemaCapabilities
}

// NewRecordService creates the record synchronizer. The schema capability
// descriptor is resolved once here; Update never feature-probes per call.
func NewRecordService(ctx context.Context, uow port.UnitOfWork, prober port.SchemaProber, logger *slog.Logger) (port.RecordService, error) {
	caps, err := prober.ProbeVideoColumns(ctx)
	if err != nil {
		return nil, err
	}
	return &recordService{uow: uow, prober: prober, logger: logger, caps: caps}, nil
}

func (r *recordService) capabilities() port.SchemaCapabilities {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.caps
}

func (r *recordService) refreshCapabilities(ctx context.Context) {
	caps, err := r.prober.ProbeVideoColumns(ctx)
	if err != nil {
		r.logger.Error("failed to re-probe video columns", "error", err)
		return
	}
	r.mu.Lock()
	r.caps = caps
	r.mu.Unlock()
}

// CreateMinimal inserts the intake row. Called before any remote asset
// exists so downstream consumers never see a missing record.
func (r *recordService) CreateMinimal(ctx context.Context, video domain.Video) (*domain.Video, error) {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	if video.AssetStatus == "" {
		video.AssetStatus = domain.AssetStatusNone
	}
	if video.ProcessingStatus == "" {
		video.ProcessingStatus = domain.ProcessingStatusPending
	}
	if video.TranscriptStatus == "" {
		video.TranscriptStatus = domain.TranscriptStatusNone
	}

	if err := r.uow.VideoRepo().Create(ctx, video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Update applies a partial update as a single statement. On an
// unknown-column error the schema has drifted behind the code: re-probe,
// strip the update down to what the table actually has and retry once.
func (r *recordService) Update(ctx context.Context, id uuid.UUID, update domain.VideoUpdate) error {
	if update.IsZero() {
		return nil
	}

	caps := r.capabilities()
	for _, col := range update.Columns() {
		if !caps.Has(col) {
			r.logger.Warn("degraded video update, column not in schema", "video_id", id, "column", col)
		}
	}

	err := r.uow.VideoRepo().Update(ctx, id, update, caps)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUnknownColumn) {
		return err
	}

	r.logger.Warn("video update hit missing column, retrying with base columns", "video_id", id, "error", err)
	r.refreshCapabilities(ctx)

	retryErr := r.uow.VideoRepo().Update(ctx, id, update, r.capabilities())
	if retryErr != nil {
		return retryErr
	}
	return nil
}

func (r *recordService) FindDuplicate(ctx context.Context, filename string, sizeBytes int64) (*domain.Video, error) {
	return r.uow.VideoRepo().FindDuplicate(ctx, filename, sizeBytes)
}

func (r *recordService) Get(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return r.uow.VideoRepo().FindByID(ctx, id)
}
