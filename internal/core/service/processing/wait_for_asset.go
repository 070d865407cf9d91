package processing

import (
	"context"
	"time"

	"vodcore/internal/core/domain"
)

// waitForAsset polls the asset status on a fixed interval until it reaches a
// terminal state or the budget runs out. The budget is both an attempt count
// and a wall-clock ceiling, and the loop honors caller cancellation, so it
// exits within attempts*interval regardless of what the provider does.
func (p *processingService) waitForAsset(ctx context.Context, assetID string) (*domain.Asset, int, error) {

	deadline := time.Now().Add(time.Duration(p.cfg.PollMaxAttempts) * p.cfg.PollInterval)
	var last *domain.Asset

	for attempt := 1; attempt <= p.cfg.PollMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, attempt - 1, err
		}
		if time.Now().After(deadline) {
			return last, attempt - 1, nil
		}

		asset, err := p.assets.GetAssetStatus(ctx, assetID)
		if err != nil {
			p.logger.Warn("asset status poll failed", "asset_id", assetID, "attempt", attempt, "error", err)
		} else {
			last = asset
			if asset.Status == domain.AssetStatusReady || asset.Status == domain.AssetStatusErrored {
				return asset, attempt, nil
			}
		}

		select {
		case <-ctx.Done():
			return last, attempt, ctx.Err()
		case <-time.After(p.cfg.PollInterval):
		}
	}

	return last, p.cfg.PollMaxAttempts, nil
}
