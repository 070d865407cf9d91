package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vodcore/internal/config"
	"vodcore/internal/core/domain"
	"vodcore/internal/core/port"
)

// Provider calls a self-hosted speech-to-text service that transcribes
// synchronously. It is the last resort of the chain: lower quality, no
// speaker labels, but no external account needed.
type Provider struct {
	baseURL string
	http    *http.Client
}

// NewProvider returns the fallback speech transcription provider
func NewProvider(cfg config.TranscriptionConfig) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(cfg.SpeechBaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ port.TranscriptionProvider = (*Provider)(nil)

func (p *Provider) Name() string {
	return "speech"
}

func (p *Provider) Configured() (bool, string) {
	if p.baseURL == "" {
		return false, "missing base url"
	}
	return true, ""
}

type speechRequest struct {
	MediaURL string `json:"media_url"`
	Language string `json:"language,omitempty"`
}

type speechResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Transcribe runs a synchronous transcription of the media url
func (p *Provider) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	payload := speechRequest{
		MediaURL: req.MediaURL,
		Language: req.Options.Language,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/transcribe", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out speechResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if out.Confidence > 0 && out.Confidence < req.Options.ConfidenceThreshold {
		return nil, fmt.Errorf("transcript confidence %.2f below threshold %.2f", out.Confidence, req.Options.ConfidenceThreshold)
	}

	return &domain.TranscriptionResult{
		Text:   out.Text,
		Status: domain.TranscriptionStatusCompleted,
	}, nil
}
