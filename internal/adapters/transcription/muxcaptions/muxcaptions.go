package muxcaptions

import (
	"context"
	"fmt"

	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// Provider asks the asset processor to generate a caption track on the
// video's existing asset. The track files arrive later through a track.ready
// webhook, so results are always asynchronous.
type Provider struct {
	assets   port.AssetProcessor
	record   port.RecordService
	language string
	tokenID  string
}

// NewProvider returns the native-captions transcription provider
func NewProvider(assets port.AssetProcessor, record port.RecordService, assetCfg config.AssetAPIConfig, transcriptionCfg config.TranscriptionConfig) *Provider {
	return &Provider{
		assets:   assets,
		record:   record,
		language: transcriptionCfg.Language,
		tokenID:  assetCfg.TokenID,
	}
}

var _ port.TranscriptionProvider = (*Provider)(nil)

func (p *Provider) Name() string {
	return "captions"
}

func (p *Provider) Configured() (bool, string) {
	if p.tokenID == "" {
		return false, "missing asset api credentials"
	}
	return true, ""
}

// Transcribe requests a generated caption track on the video's asset
func (p *Provider) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	video, err := p.record.Get(ctx, req.VideoID)
	if err != nil {
		return nil, err
	}
	if video.AssetID == "" {
		return nil, fmt.Errorf("video %s has no asset yet", req.VideoID)
	}

	language := req.Options.Language
	if language == "" {
		language = p.language
	}

	track, err := p.assets.RequestCaptions(ctx, video.AssetID, language)
	if err != nil {
		return nil, err
	}

	return &domain.TranscriptionResult{
		JobID:  track.ID,
		Status: domain.TranscriptionStatusSubmitted,
		Async:  true,
	}, nil
}
