package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vodcore/internal/core/domain"
)

const thumbnailAtSeconds = 10

// HandleEvent verifies and applies one provider lifecycle event. Delivery is
// at-least-once and unordered, so every transition is an idempotent
// partial-field upsert safe to apply over any prior state; once the
// signature verifies, the event is accepted even if persistence fails.
func (w *webhookService) HandleEvent(ctx context.Context, rawBody []byte, signatureHeader string) domain.WebhookOutcome {

	if signatureHeader != "" {
		if err := verifySignature(w.secret, rawBody, signatureHeader); err != nil {
			return domain.WebhookOutcome{Accepted: false, Action: domain.WebhookActionIgnored, Err: err}
		}
	} else if w.secret != "" {
		return domain.WebhookOutcome{Accepted: false, Action: domain.WebhookActionIgnored, Err: domain.ErrInvalidSignature}
	} else {
		w.logger.Warn("accepting unsigned webhook event, no webhook secret configured")
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return domain.WebhookOutcome{Accepted: false, Action: domain.WebhookActionIgnored, Err: fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)}
	}

	videoID, err := uuid.Parse(event.Data.Passthrough)
	if err != nil {
		// an event we cannot map to a video must not cause provider
		// redelivery; acknowledge and move on
		w.logger.Warn("webhook event with unmappable passthrough", "type", event.Type, "passthrough", event.Data.Passthrough)
		return domain.WebhookOutcome{Accepted: true, Action: domain.WebhookActionUnmatched}
	}

	var applyErr error
	action := domain.WebhookActionApplied

	switch event.Type {
	case domain.WebhookAssetCreated:
		applyErr = w.applyAssetCreated(ctx, videoID, event.Data)
	case domain.WebhookAssetReady:
		applyErr = w.applyAssetReady(ctx, videoID, event.Data)
	case domain.WebhookAssetErrored:
		applyErr = w.applyAssetErrored(ctx, videoID)
	case domain.WebhookTrackReady:
		applyErr = w.applyTrackReady(ctx, videoID, event.Data)
	default:
		w.logger.Info("ignoring webhook event type", "type", event.Type)
		action = domain.WebhookActionIgnored
	}

	if applyErr != nil {
		if errors.Is(applyErr, domain.ErrVideoNotFound) {
			w.logger.Warn("webhook event for unknown video", "type", event.Type, "video_id", videoID)
			return domain.WebhookOutcome{Accepted: true, Action: domain.WebhookActionUnmatched}
		}
		// persistence trouble is ours, not the provider's
		w.logger.Error("failed to apply webhook event", "type", event.Type, "video_id", videoID, "error", applyErr)
		return domain.WebhookOutcome{Accepted: true, Action: action, Err: applyErr}
	}

	return domain.WebhookOutcome{Accepted: true, Action: action}
}

func (w *webhookService) applyAssetCreated(ctx context.Context, videoID uuid.UUID, data domain.WebhookAsset) error {
	preparing := domain.AssetStatusPreparing
	return w.record.Update(ctx, videoID, domain.VideoUpdate{
		AssetID:     &data.ID,
		AssetStatus: &preparing,
	})
}

func (w *webhookService) applyAssetReady(ctx context.Context, videoID uuid.UUID, data domain.WebhookAsset) error {
	if len(data.PlaybackIDs) == 0 {
		w.logger.Warn("asset ready event without playback id", "video_id", videoID, "asset_id", data.ID)
		preparingDone := domain.AssetStatusReady
		return w.record.Update(ctx, videoID, domain.VideoUpdate{
			AssetID:     &data.ID,
			AssetStatus: &preparingDone,
		})
	}

	playbackID := data.PlaybackIDs[0].ID
	thumbnailURL := w.assets.ThumbnailURL(playbackID, thumbnailAtSeconds)
	streamURL := w.assets.StreamURL(playbackID)
	downloadURL := w.assets.MP4URL(playbackID, "high")

	ready := domain.AssetStatusReady
	done := domain.ProcessingStatusReady
	processed := true
	update := domain.VideoUpdate{
		AssetID:          &data.ID,
		PlaybackID:       &playbackID,
		AssetStatus:      &ready,
		ProcessingStatus: &done,
		ThumbnailURL:     &thumbnailURL,
		StreamURL:        &streamURL,
		DownloadURL:      &downloadURL,
		Processed:        &processed,
	}
	if data.DurationSec > 0 {
		update.DurationSec = &data.DurationSec
	}
	if data.AspectRatio != "" {
		update.AspectRatio = &data.AspectRatio
	}
	return w.record.Update(ctx, videoID, update)
}

func (w *webhookService) applyAssetErrored(ctx context.Context, videoID uuid.UUID) error {
	errored := domain.AssetStatusErrored
	failed := domain.ProcessingStatusFailed
	return w.record.Update(ctx, videoID, domain.VideoUpdate{
		AssetStatus:      &errored,
		ProcessingStatus: &failed,
	})
}

func (w *webhookService) applyTrackReady(ctx context.Context, videoID uuid.UUID, data domain.WebhookAsset) error {
	if data.TrackType != "text" {
		return nil
	}

	video, err := w.record.Get(ctx, videoID)
	if err != nil {
		return err
	}
	if video.PlaybackID == "" {
		w.logger.Warn("track ready before playback id known", "video_id", videoID)
		return nil
	}

	vttURL := w.assets.CaptionURL(video.PlaybackID, data.TrackID, "vtt")
	srtURL := w.assets.CaptionURL(video.PlaybackID, data.TrackID, "srt")
	completed := domain.TranscriptStatusCompleted
	return w.record.Update(ctx, videoID, domain.VideoUpdate{
		CaptionVTTURL:    &vttURL,
		CaptionSRTURL:    &srtURL,
		TranscriptStatus: &completed,
	})
}
