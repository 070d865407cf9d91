package enrichment

import (
	"context"
	"encoding/json"
	"fmt"

	"vodcore/internal/core/domain"
)

// HandleMessage executes one enrichment task delivered by the broker.
// Returning an error naks the message for redelivery; the task row records
// the failure either way so it stays queryable.
func (e *enrichmentService) HandleMessage(ctx context.Context, data []byte) error {

	var msg domain.TaskMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("could not unmarshal task message: %w", err)
	}

	task, err := e.uow.TaskRepo().FindByID(ctx, msg.TaskID)
	if err != nil {
		return err
	}
	if task.Status == domain.TaskStatusDone {
		// redelivered after a successful run
		return nil
	}

	if err := e.uow.TaskRepo().MarkRunning(ctx, task.ID); err != nil {
		return err
	}

	video, err := e.record.Get(ctx, task.VideoID)
	if err != nil {
		e.markFailed(ctx, task, err)
		return err
	}

	e.logger.Info("executing enrichment task", "task_id", task.ID, "video_id", task.VideoID, "kind", task.Kind)

	var execErr error
	switch task.Kind {
	case domain.TaskKindTranscribe:
		execErr = e.runTranscribe(ctx, video, domain.TranscriptionOptions{})
	case domain.TaskKindAudioEnhance:
		execErr = e.runTranscribe(ctx, video, domain.TranscriptionOptions{Punctuate: true, WordTimestamps: true})
	case domain.TaskKindCaptions:
		execErr = e.runCaptions(ctx, video)
	default:
		execErr = fmt.Errorf("unknown task kind: %s", task.Kind)
	}

	if execErr != nil {
		e.markFailed(ctx, task, execErr)
		return execErr
	}

	if doneErr := e.uow.TaskRepo().MarkDone(ctx, task.ID); doneErr != nil {
		e.logger.Error("failed to mark task done", "task_id", task.ID, "error", doneErr)
	}
	return nil
}

func (e *enrichmentService) markFailed(ctx context.Context, task *domain.EnrichmentTask, cause error) {
	if err := e.uow.TaskRepo().MarkFailed(ctx, task.ID, cause.Error()); err != nil {
		e.logger.Error("failed to mark task failed", "task_id", task.ID, "error", err)
	}
}

func (e *enrichmentService) runTranscribe(ctx context.Context, video *domain.Video, opts domain.TranscriptionOptions) error {

	mediaURL := video.StreamURL
	if mediaURL == "" {
		signed, _, err := e.storage.PresignedReadURL(ctx, video.StorageKey)
		if err != nil {
			return fmt.Errorf("could not presign media for transcription: %w", err)
		}
		mediaURL = signed
	}

	result, err := e.transcriber.Transcribe(ctx, domain.TranscriptionRequest{
		VideoID:  video.ID,
		MediaURL: mediaURL,
		Options:  opts,
	})
	if err != nil {
		return err
	}

	update := domain.VideoUpdate{}
	switch result.Status {
	case domain.TranscriptionStatusCompleted:
		completed := domain.TranscriptStatusCompleted
		update.TranscriptText = &result.Text
		update.TranscriptStatus = &completed
		update.TranscriptProvider = &result.Provider
		if result.SpeakerCount > 0 {
			update.SpeakerCount = &result.SpeakerCount
		}
		if result.CaptionVTTURL != "" {
			update.CaptionVTTURL = &result.CaptionVTTURL
		}
		if result.CaptionSRTURL != "" {
			update.CaptionSRTURL = &result.CaptionSRTURL
		}

	case domain.TranscriptionStatusSubmitted:
		processing := domain.TranscriptStatusProcessing
		update.TranscriptStatus = &processing
		update.TranscriptionJobID = &result.JobID
		update.TranscriptProvider = &result.Provider

	case domain.TranscriptionStatusUnavailable:
		unavailable := domain.TranscriptStatusUnavailable
		update.TranscriptStatus = &unavailable
		e.logger.Warn("no transcription provider available", "video_id", video.ID, "reasons", result.Reasons)

	default:
		failed := domain.TranscriptStatusFailed
		update.TranscriptStatus = &failed
	}

	return e.record.Update(ctx, video.ID, update)
}

func (e *enrichmentService) runCaptions(ctx context.Context, video *domain.Video) error {
	if video.AssetID == "" {
		return fmt.Errorf("video %s has no asset yet", video.ID)
	}

	track, err := e.assets.RequestCaptions(ctx, video.AssetID, e.cfg.Language)
	if err != nil {
		return fmt.Errorf("could not request captions: %w", err)
	}

	// the caption URLs arrive via the track.ready webhook once the provider
	// finishes generating the track
	pending := domain.TranscriptStatusPending
	e.logger.Info("caption track requested", "video_id", video.ID, "track_id", track.ID)
	return e.record.Update(ctx, video.ID, domain.VideoUpdate{TranscriptStatus: &pending})
}
