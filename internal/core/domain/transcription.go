package domain

import "github.com/google/uuid"

// TranscriptionStatus is the outcome status of a provider chain run
type TranscriptionStatus string

const (
	TranscriptionStatusCompleted   TranscriptionStatus = "completed"
	TranscriptionStatusSubmitted   TranscriptionStatus = "submitted"
	TranscriptionStatusFailed      TranscriptionStatus = "failed"
	TranscriptionStatusUnavailable TranscriptionStatus = "unavailable"
)

// TranscriptionOptions lists every recognized option with its default applied
// by the chain
type TranscriptionOptions struct {
	Language            string
	MaxSpeakers         int
	Punctuate           bool
	WordTimestamps      bool
	ConfidenceThreshold float64
}

// TranscriptionRequest asks the provider chain for a transcript of a video
type TranscriptionRequest struct {
	VideoID  uuid.UUID
	MediaURL string
	Options  TranscriptionOptions
}

// TranscriptionResult is what a provider (or the whole chain) produced. A
// synchronous provider fills Text; an asynchronous one fills JobID and sets
// Async so callers know to expect a later callback. Reasons carries the
// missing-credential explanations when no provider is configured.
type TranscriptionResult struct {
	Text          string
	CaptionVTTURL string
	CaptionSRTURL string
	JobID         string
	Provider      string
	Status        TranscriptionStatus
	Async         bool
	SpeakerCount  int
	Reasons       []string
}
