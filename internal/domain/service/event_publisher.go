package service

import (
	"context"
	"time"
)

// AuditEvent records an administrative mutation for asynchronous processing
// (audit trail, downstream sync). Events are fire-and-forget: a publish
// failure is logged but never fails the originating request.
type AuditEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing.
	Action     string    `json:"action"`               // e.g. "merchant.created", "membership.updated".
	ActorID    string    `json:"actor_id"`             // The authenticated user performing the action.
	MerchantID string    `json:"merchant_id,omitempty"`
	SubjectID  string    `json:"subject_id,omitempty"` // The entity acted upon, when not the merchant itself.
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async processing.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
