package processing

import (
	"context"
	"strings"

	"vodcore/internal/core/domain"
)

type assetMetadata struct {
	DurationSec float64
	Width       int
	Height      int
	AspectRatio string
	BitrateKbps int
}

// extractMetadata pulls duration/dimensions/bitrate from the asset provider
// with a small bounded retry, falling back to heuristics derived from the
// request alone rather than blocking the caller
func (p *processingService) extractMetadata(ctx context.Context, asset *domain.Asset, req domain.ProcessRequest) assetMetadata {

	candidate := asset
	for attempt := 1; attempt <= p.cfg.MetadataRetries; attempt++ {
		if candidate != nil && candidate.DurationSec > 0 {
			return assetMetadata{
				DurationSec: candidate.DurationSec,
				Width:       candidate.Width,
				Height:      candidate.Height,
				AspectRatio: candidate.AspectRatio,
				BitrateKbps: candidate.BitrateKbps,
			}
		}

		refreshed, err := p.assets.GetAssetStatus(ctx, asset.ID)
		if err != nil {
			p.logger.Warn("metadata extraction attempt failed", "asset_id", asset.ID, "attempt", attempt, "error", err)
			candidate = nil
			continue
		}
		candidate = refreshed
	}

	if candidate != nil && candidate.DurationSec > 0 {
		return assetMetadata{
			DurationSec: candidate.DurationSec,
			Width:       candidate.Width,
			Height:      candidate.Height,
			AspectRatio: candidate.AspectRatio,
			BitrateKbps: candidate.BitrateKbps,
		}
	}

	return heuristicMetadata(req)
}

// heuristicMetadata guesses values from filename and declared size when the
// provider never reported them. Assumes a ~2 Mbps H.264 file, 1080p for
// screen recordings and 720p otherwise.
func heuristicMetadata(req domain.ProcessRequest) assetMetadata {
	const assumedKbps = 2000

	meta := assetMetadata{
		Width:       1280,
		Height:      720,
		AspectRatio: "16:9",
		BitrateKbps: assumedKbps,
	}
	lower := strings.ToLower(req.Filename)
	if strings.Contains(lower, "screen") || strings.Contains(lower, "lecture") {
		meta.Width, meta.Height = 1920, 1080
	}
	if req.SizeHint > 0 {
		meta.DurationSec = float64(req.SizeHint*8) / float64(assumedKbps*1000)
	}
	return meta
}
