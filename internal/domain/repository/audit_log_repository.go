package repository

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogRepository persists the append-only audit trail.
type AuditLogRepository interface {
	// CreateAuditLog appends one audit row.
	CreateAuditLog(ctx context.Context, log *entity.AuditLog) error

	// FindAuditLogsByMerchant returns a merchant's audit rows, newest first.
	FindAuditLogsByMerchant(ctx context.Context, merchantID uuid.UUID, limit int) ([]*entity.AuditLog, error)
}
