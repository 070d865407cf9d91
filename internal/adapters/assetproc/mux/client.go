package mux

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

// Client talks to the Mux-compatible video API over its REST surface
type Client struct {
	baseURL     string
	streamHost  string
	imageHost   string
	tokenID     string
	tokenSecret string
	http        *http.Client
}

// NewClient returns a Client configured from AssetAPIConfig
func NewClient(cfg config.AssetAPIConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		streamHost:  cfg.StreamHost,
		imageHost:   cfg.ImageHost,
		tokenID:     cfg.TokenID,
		tokenSecret: cfg.TokenSecret,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ port.AssetProcessor = (*Client)(nil)

type assetPayload struct {
	ID          string           `json:"id"`
	Status      string           `json:"status"`
	Duration    float64          `json:"duration"`
	AspectRatio string           `json:"aspect_ratio"`
	MaxWidth    int              `json:"max_stored_resolution_width"`
	MaxHeight   int              `json:"max_stored_resolution_height"`
	Bitrate     int              `json:"max_stored_bitrate_kbps"`
	PlaybackIDs []playbackIDItem `json:"playback_ids"`
}

type playbackIDItem struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

type assetEnvelope struct {
	Data assetPayload `json:"data"`
}

type trackEnvelope struct {
	Data struct {
		ID           string `json:"id"`
		Type         string `json:"type"`
		LanguageCode string `json:"language_code"`
	} `json:"data"`
}

// CreateAsset submits an ingest job. The passthrough value is echoed back in
// every webhook event for this asset, which is how events get correlated to a
// video row.
func (c *Client) CreateAsset(ctx context.Context, inputURL string, passthrough string, opts domain.AssetOptions) (*domain.Asset, error) {
	body := map[string]any{
		"input":       inputURL,
		"passthrough": passthrough,
	}
	if opts.PlaybackPolicy != "" {
		body["playback_policy"] = []string{opts.PlaybackPolicy}
	}
	if opts.MP4Support {
		body["mp4_support"] = "standard"
	}
	if opts.NormalizeAudio {
		body["normalize_audio"] = true
	}

	var envelope assetEnvelope
	if err := c.do(ctx, http.MethodPost, "/video/v1/assets", body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return c.toAsset(envelope.Data), nil
}

// GetAssetStatus fetches the current asset state
func (c *Client) GetAssetStatus(ctx context.Context, assetID string) (*domain.Asset, error) {
	var envelope assetEnvelope
	err := c.do(ctx, http.MethodGet, "/video/v1/assets/"+assetID, nil, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return c.toAsset(envelope.Data), nil
}

// RequestCaptions asks the provider to generate a text track. The resulting
// files are announced later by a track.ready webhook.
func (c *Client) RequestCaptions(ctx context.Context, assetID string, language string) (*domain.CaptionTrack, error) {
	body := map[string]any{
		"type":                "text",
		"text_type":           "subtitles",
		"generated_subtitles": []map[string]string{{"language_code": language}},
	}

	var envelope trackEnvelope
	if err := c.do(ctx, http.MethodPost, "/video/v1/assets/"+assetID+"/tracks", body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to request captions: %w", err)
	}
	return &domain.CaptionTrack{
		ID:       envelope.Data.ID,
		Kind:     envelope.Data.Type,
		Language: envelope.Data.LanguageCode,
	}, nil
}

// ThumbnailURL derives the image host thumbnail url for a playback id
func (c *Client) ThumbnailURL(playbackID string, atSeconds int) string {
	return fmt.Sprintf("https://%s/%s/thumbnail.jpg?time=%d", c.imageHost, playbackID, atSeconds)
}

// StreamURL derives the HLS url for a playback id
func (c *Client) StreamURL(playbackID string) string {
	return fmt.Sprintf("https://%s/%s.m3u8", c.streamHost, playbackID)
}

// MP4URL derives the static rendition url for a playback id
func (c *Client) MP4URL(playbackID string, quality string) string {
	return fmt.Sprintf("https://%s/%s/%s.mp4", c.streamHost, playbackID, quality)
}

// CaptionURL derives the text track url for a playback id
func (c *Client) CaptionURL(playbackID string, trackID string, format string) string {
	return fmt.Sprintf("https://%s/%s/text/%s.%s", c.streamHost, playbackID, trackID, format)
}

func (c *Client) toAsset(payload assetPayload) *domain.Asset {
	asset := &domain.Asset{
		ID:          payload.ID,
		Status:      domain.AssetStatus(payload.Status),
		DurationSec: payload.Duration,
		AspectRatio: payload.AspectRatio,
		Width:       payload.MaxWidth,
		Height:      payload.MaxHeight,
		BitrateKbps: payload.Bitrate,
	}
	if len(payload.PlaybackIDs) > 0 {
		asset.PlaybackID = payload.PlaybackIDs[0].ID
	}
	return asset
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.tokenID, c.tokenSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrAssetNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
