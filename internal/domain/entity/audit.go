package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one recorded administrative mutation. Rows are written by the
// audit worker from published events and are append-only.
type AuditLog struct {
	ID         uuid.UUID
	RequestID  string
	Action     string // e.g. "merchant.created", "membership.updated".
	ActorID    uuid.UUID
	MerchantID *uuid.UUID
	SubjectID  string // The entity acted upon, when not the merchant itself.
	OccurredAt time.Time
	RecordedAt time.Time
}
