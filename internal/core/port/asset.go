package port

import (
	"context"

	"vodcore/internal/core/domain"
)

// AssetProcessor is an interface to define the remote transcoding service.
// CreateAsset embeds the passthrough correlation value echoed back in webhook
// events.
type AssetProcessor interface {
	CreateAsset(ctx context.Context, inputURL string, passthrough string, opts domain.AssetOptions) (*domain.Asset, error)
	GetAssetStatus(ctx context.Context, assetID string) (*domain.Asset, error)
	RequestCaptions(ctx context.Context, assetID string, language string) (*domain.CaptionTrack, error)
	ThumbnailURL(playbackID string, atSeconds int) string
	StreamURL(playbackID string) string
	MP4URL(playbackID string, quality string) string
	CaptionURL(playbackID string, trackID string, format string) string
}
