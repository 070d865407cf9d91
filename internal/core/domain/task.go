package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskKind is the type of enrichment work a task row represents
type TaskKind string

const (
	TaskKindTranscribe   TaskKind = "transcribe"
	TaskKindCaptions     TaskKind = "captions"
	TaskKindAudioEnhance TaskKind = "audio_enhance"
)

// TaskStatus is the lifecycle status of an enrichment task
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusFailed  TaskStatus = "failed"
)

// EnrichmentTask is a persisted unit of background enrichment work. The row
// is the outbox: it is written in the same transaction as the state it
// follows from, then published to the broker, so a failed background job is
// a queryable row and not just a log line.
type EnrichmentTask struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	Kind      TaskKind
	Status    TaskStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskMessage is the broker payload pointing at a task row
type TaskMessage struct {
	TaskID  uuid.UUID `json:"task_id"`
	VideoID uuid.UUID `json:"video_id"`
	Kind    TaskKind  `json:"kind"`
}
