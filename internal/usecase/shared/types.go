package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// NotificationJob is an outbox row waiting to be handed to the broker.
type NotificationJob struct {
	ID        uuid.UUID
	EventType string
	RequestID uuid.UUID
	Payload   []byte
	Attempts  int32
	RunAt     time.Time
}
