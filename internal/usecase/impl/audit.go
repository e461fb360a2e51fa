package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "horeca/internal/delivery/context"
	"horeca/internal/domain/service"

	"github.com/google/uuid"
)

// publishAudit emits an audit event for an administrative mutation.
// Publishing is fire-and-forget: a broker outage must never fail the
// mutation that already committed, so failures are only logged.
func publishAudit(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, action string, actorID uuid.UUID, merchantID, subjectID string) {
	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Action:     action,
		ActorID:    actorID.String(),
		MerchantID: merchantID,
		SubjectID:  subjectID,
		OccurredAt: time.Now(),
	}
	if err := publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish audit event",
			slog.String("action", action),
			slog.Any("error", err))
	}
}
