package domain

// Webhook event types emitted by the asset processor
const (
	WebhookAssetCreated = "video.asset.created"
	WebhookAssetReady   = "video.asset.ready"
	WebhookAssetErrored = "video.asset.errored"
	WebhookTrackReady   = "video.asset.track.ready"
)

// WebhookEvent is the decoded provider lifecycle event. Delivery is
// at-least-once and unordered; applying the same event twice must be a no-op
// on final video state.
type WebhookEvent struct {
	Type   string       `json:"type"`
	Object WebhookRef   `json:"object"`
	Data   WebhookAsset `json:"data"`
}

// WebhookRef identifies the remote object the event is about
type WebhookRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// WebhookAsset is the asset payload carried by lifecycle events. Passthrough
// echoes the correlation value set at create-asset time and maps back to the
// internal video id; the asset id alone is not enough because the early
// "created" event can arrive before the asset id is persisted.
type WebhookAsset struct {
	ID          string            `json:"id"`
	Passthrough string            `json:"passthrough"`
	Status      string            `json:"status"`
	DurationSec float64           `json:"duration"`
	AspectRatio string            `json:"aspect_ratio"`
	PlaybackIDs []WebhookPlayback `json:"playback_ids"`
	Tracks      []WebhookTrack    `json:"tracks"`
	// set on track.ready events
	TrackID   string `json:"track_id"`
	TrackType string `json:"track_type"`
}

// WebhookPlayback is one playback id entry on an asset payload
type WebhookPlayback struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// WebhookTrack is one track entry on an asset payload
type WebhookTrack struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	TextType string `json:"text_type"`
	Language string `json:"language_code"`
}

// WebhookAction describes what the state machine did with an event
type WebhookAction string

const (
	WebhookActionApplied   WebhookAction = "applied"
	WebhookActionIgnored   WebhookAction = "ignored"
	WebhookActionUnmatched WebhookAction = "unmatched"
)

// WebhookOutcome is the result of handling one event. Accepted controls the
// HTTP response to the provider: once the signature verifies the event is
// acknowledged even if persistence partially failed, to avoid redelivery
// storms.
type WebhookOutcome struct {
	Accepted bool
	Action   WebhookAction
	Err      error
}
