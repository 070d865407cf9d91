package assemblyai

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

// Provider submits transcription jobs to the AssemblyAI REST API. Jobs are
// asynchronous: Transcribe returns a job id and the transcript arrives later
// through the provider's own callback.
type Provider struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewProvider returns the enhanced transcription provider
func NewProvider(cfg config.TranscriptionConfig) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(cfg.EnhancedBaseURL, "/"),
		apiKey:  cfg.EnhancedAPIKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ port.TranscriptionProvider = (*Provider)(nil)

func (p *Provider) Name() string {
	return "enhanced"
}

func (p *Provider) Configured() (bool, string) {
	if p.apiKey == "" {
		return false, "missing api key"
	}
	return true, ""
}

type transcriptRequest struct {
	AudioURL         string  `json:"audio_url"`
	LanguageCode     string  `json:"language_code,omitempty"`
	Punctuate        bool    `json:"punctuate"`
	SpeakerLabels    bool    `json:"speaker_labels"`
	SpeakersExpected int     `json:"speakers_expected,omitempty"`
	WordBoost        float64 `json:"boost_param,omitempty"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Transcribe submits the media url as a transcription job
func (p *Provider) Transcribe(ctx context.Context, req domain.TranscriptionRequest) (*domain.TranscriptionResult, error) {
	payload := transcriptRequest{
		AudioURL:         req.MediaURL,
		LanguageCode:     req.Options.Language,
		Punctuate:        req.Options.Punctuate,
		SpeakerLabels:    req.Options.MaxSpeakers > 1,
		SpeakersExpected: req.Options.MaxSpeakers,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v2/transcript", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", p.apiKey)
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

	var out transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Status == "error" {
		return nil, fmt.Errorf("transcription job rejected: %s", out.Error)
	}

	return &domain.TranscriptionResult{
		JobID:  out.ID,
		Status: domain.TranscriptionStatusSubmitted,
		Async:  true,
	}, nil
}
