package transcription

import (
	"context"
	"fmt"
	"log/slog"

	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

type providerChain struct {
	providers []port.TranscriptionProvider
	cfg       config.TranscriptionConfig
	logger    *slog.Logger
}

// NewProviderChain creates the transcription chain. Providers are tried in
// the given priority order; a provider error advances the chain instead of
// failing it.
func NewProviderChain(providers []port.TranscriptionProvider, cfg config.TranscriptionConfig, logger *slog.Logger) port.Transcriber {
	return &providerChain{providers: providers, cfg: cfg, logger: logger}
}

func (c *providerChain) applyDefaults(opts domain.TranscriptionOptions) domain.TranscriptionOptions {
	if opts.Language == "" {
		opts.Language = c.cfg.Language
	}
	if opts.MaxSpeakers == 0 {
		opts.MaxSpeakers = c.cfg.MaxSpeakers
	}
	if opts.ConfidenceThreshold == 0 {
		opts.ConfidenceThreshold = c.cfg.ConfidenceThreshold
	}
	return opts
}

// Transcribe walks the providers in order and returns the first usable
// result. Exhausting the chain is a degraded outcome, not an error: the
// result carries status unavailable plus the reason each provider was
// skipped or failed, for operator surfacing.
func (c *providerChain) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	req.Options = c.applyDefaults(req.Options)

	var reasons []string
	for _, provider := range c.providers {
		if ok, reason := provider.Configured(); !ok {
			reasons = append(reasons, fmt.Sprintf("%s: %s", provider.Name(), reason))
			continue
		}

		result, err := provider.Transcribe(ctx, req)
		if err != nil {
			c.logger.Warn("transcription provider failed, trying next",
				"provider", provider.Name(), "video_id", req.VideoID, "error", err)
			reasons = append(reasons, fmt.Sprintf("%s: %v", provider.Name(), err))
			continue
		}

		result.Provider = provider.Name()
		if result.Status == "" {
			if result.Async {
				result.Status = domain.TranscriptionStatusSubmitted
			} else {
				result.Status = domain.TranscriptionStatusCompleted
			}
		}
		return result, nil
	}

	return &domain.TranscriptionResult{
		Status:  domain.TranscriptionStatusUnavailable,
		Reasons: reasons,
	}, nil
}
