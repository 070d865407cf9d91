package processing

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// enqueueTask writes the outbox row and publishes it to the broker. A failed
// publish leaves a pending row behind, which is the point: the failure is
// queryable, and the worker backlog sweep can pick it up.
func (p *processingService) enqueueTask(ctx context.Context, videoID uuid.UUID, kind domain.TaskKind) {

	task := domain.EnrichmentTask{
		ID:      uuid.New(),
		VideoID: videoID,
		Kind:    kind,
		Status:  domain.TaskStatusPending,
	}

	txErr := p.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.TaskRepo().Create(ctx, task)
	})
	if txErr != nil {
		p.logger.Error("failed to persist enrichment task", "video_id", videoID, "kind", kind, "error", txErr)
		return
	}

	payload, err := json.Marshal(domain.TaskMessage{
		TaskID:  task.ID,
		VideoID: videoID,
		Kind:    kind,
	})
	if err != nil {
		p.logger.Error("failed to encode task message", "task_id", task.ID, "error", err)
		return
	}

	if pubErr := p.publisher.Publish(ctx, payload); pubErr != nil {
		p.logger.Warn("failed to publish enrichment task, row stays pending", "task_id", task.ID, "error", pubErr)
	}
}
