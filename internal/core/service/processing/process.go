package processing

import (
	"context"
	"errors"
	"fmt"

	"vodcore/internal/core/domain"
)

// Process hands a completed upload to the asset processor and drives it to a
// finalized or partially-finalized video record. Small files are waited on
// synchronously; everything else returns immediately and finishes via
// webhooks and enrichment tasks.
func (p *processingService) Process(ctx context.Context, req domain.ProcessRequest) (*domain.ProcessResult, error) {

	// client retries must not create a second remote asset for the same file;
	// a match with an asset already attached answers the call, whether it is
	// another video's row or a retry against this one
	if dup, err := p.record.FindDuplicate(ctx, req.Filename, req.SizeHint); err == nil && dup != nil && dup.AssetID != "" {
		return &domain.ProcessResult{
			VideoID:      dup.ID,
			AssetID:      dup.AssetID,
			PlaybackID:   dup.PlaybackID,
			ThumbnailURL: dup.ThumbnailURL,
			StreamURL:    dup.StreamURL,
			Status:       dup.ProcessingStatus,
			Duplicate:    true,
		}, nil
	} else if err != nil && !errors.Is(err, domain.ErrVideoNotFound) {
		p.logger.Warn("duplicate lookup failed, continuing", "video_id", req.VideoID, "error", err)
	}

	inputURL, _, err := p.storage.PresignedReadURL(ctx, req.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("could not presign asset input: %w", err)
	}

	creating := domain.AssetStatusCreating
	processing := domain.ProcessingStatusProcessing
	if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
		AssetStatus:      &creating,
		ProcessingStatus: &processing,
	}); updErr != nil {
		return nil, updErr
	}

	asset, err := p.assets.CreateAsset(ctx, inputURL, req.VideoID.String(), domain.AssetOptions{
		PlaybackPolicy: "public",
		MP4Support:     true,
		NormalizeAudio: true,
	})
	if err != nil {
		errored := domain.AssetStatusErrored
		failed := domain.ProcessingStatusFailed
		if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
			AssetStatus:      &errored,
			ProcessingStatus: &failed,
		}); updErr != nil {
			p.logger.Error("failed to record asset creation failure", "video_id", req.VideoID, "error", updErr)
		}
		return nil, fmt.Errorf("could not create asset: %w", err)
	}

	preparing := domain.AssetStatusPreparing
	if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
		AssetID:     &asset.ID,
		AssetStatus: &preparing,
	}); updErr != nil {
		p.logger.Error("failed to store asset id", "video_id", req.VideoID, "error", updErr)
	}

	p.enqueueTask(ctx, req.VideoID, domain.TaskKindTranscribe)

	result := &domain.ProcessResult{
		VideoID: req.VideoID,
		AssetID: asset.ID,
	}

	if req.SizeHint > 0 && req.SizeHint <= p.cfg.SyncMaxSize {
		result.Strategy = domain.ProcessingStrategySync
		return p.processSync(ctx, req, asset.ID, result)
	}

	result.Strategy = domain.ProcessingStrategyAsync
	result.Status = domain.ProcessingStatusProcessing
	p.quickThumbnail(ctx, req, asset.ID, result)
	return result, nil
}

// processSync polls the asset until ready, errored or the attempt budget is
// spent, then finalizes the record accordingly
func (p *processingService) processSync(ctx context.Context, req domain.ProcessRequest, assetID string, result *domain.ProcessResult) (*domain.ProcessResult, error) {

	asset, attempts, err := p.waitForAsset(ctx, assetID)
	result.SyncAttempts = attempts

	if err == nil && asset != nil {
		switch asset.Status {
		case domain.AssetStatusReady:
			p.finalizeReady(ctx, req, asset, result)
			return result, nil

		case domain.AssetStatusErrored:
			errored := domain.AssetStatusErrored
			failed := domain.ProcessingStatusFailed
			if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
				AssetStatus:      &errored,
				ProcessingStatus: &failed,
			}); updErr != nil {
				p.logger.Error("failed to record asset error", "video_id", req.VideoID, "error", updErr)
			}
			result.Status = domain.ProcessingStatusFailed
			return result, nil
		}
	}

	// budget spent, request cancelled or the asset is still preparing;
	// webhooks and enrichment finish the record later
	result.Status = domain.ProcessingStatusProcessing
	p.quickThumbnail(ctx, req, assetID, result)
	if result.PlaybackID != "" {
		// playable already, enrichment still pending
		result.Status = domain.ProcessingStatusPartial
	}
	return result, nil
}

// finalizeReady derives playback URLs, extracts metadata and marks the
// record ready
func (p *processingService) finalizeReady(ctx context.Context, req domain.ProcessRequest, asset *domain.Asset, result *domain.ProcessResult) {

	meta := p.extractMetadata(ctx, asset, req)

	thumbnailURL := p.assets.ThumbnailURL(asset.PlaybackID, p.cfg.ThumbnailAtSeconds)
	streamURL := p.assets.StreamURL(asset.PlaybackID)
	downloadURL := p.assets.MP4URL(asset.PlaybackID, "high")

	ready := domain.AssetStatusReady
	done := domain.ProcessingStatusReady
	processed := true
	if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
		PlaybackID:       &asset.PlaybackID,
		AssetStatus:      &ready,
		ProcessingStatus: &done,
		ThumbnailURL:     &thumbnailURL,
		StreamURL:        &streamURL,
		DownloadURL:      &downloadURL,
		DurationSec:      &meta.DurationSec,
		Width:            &meta.Width,
		Height:           &meta.Height,
		AspectRatio:      &meta.AspectRatio,
		BitrateKbps:      &meta.BitrateKbps,
		Processed:        &processed,
	}); updErr != nil {
		p.logger.Error("failed to finalize video record", "video_id", req.VideoID, "error", updErr)
	}

	result.PlaybackID = asset.PlaybackID
	result.ThumbnailURL = thumbnailURL
	result.StreamURL = streamURL
	result.Status = domain.ProcessingStatusReady
}

// quickThumbnail makes one short best-effort attempt to attach a thumbnail
// before returning; failure is fine, the webhook path fills it in later
func (p *processingService) quickThumbnail(ctx context.Context, req domain.ProcessRequest, assetID string, result *domain.ProcessResult) {

	quickCtx, cancel := context.WithTimeout(ctx, p.cfg.QuickThumbnailTimeout)
	defer cancel()

	asset, err := p.assets.GetAssetStatus(quickCtx, assetID)
	if err != nil || asset.PlaybackID == "" {
		return
	}

	thumbnailURL := p.assets.ThumbnailURL(asset.PlaybackID, p.cfg.ThumbnailAtSeconds)
	if updErr := p.record.Update(ctx, req.VideoID, domain.VideoUpdate{
		PlaybackID:   &asset.PlaybackID,
		ThumbnailURL: &thumbnailURL,
	}); updErr != nil {
		p.logger.Warn("failed to store quick thumbnail", "video_id", req.VideoID, "error", updErr)
	}

	result.PlaybackID = asset.PlaybackID
	result.ThumbnailURL = thumbnailURL
}
