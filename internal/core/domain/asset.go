package domain

// Asset is the remote transcoding representation of a video as reported by
// the asset processor
type Asset struct {
	ID          string
	PlaybackID  string
	Status      AssetStatus
	DurationSec float64
	AspectRatio string
	Width       int
	Height      int
	BitrateKbps int
}

// AssetOptions are the options sent with a create-asset call
type AssetOptions struct {
	PlaybackPolicy string
	MP4Support     bool
	NormalizeAudio bool
}

// CaptionTrack is a text track attached to an asset
type CaptionTrack struct {
	ID       string
	Kind     string
	Language string
}
