package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table: one append-only row per
// recorded administrative mutation.
type AuditLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID  string     `gorm:"type:varchar(64)"`
	Action     string     `gorm:"type:varchar(100);not null;index"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MerchantID *uuid.UUID `gorm:"type:uuid;index"`
	SubjectID  string     `gorm:"type:varchar(64)"`
	OccurredAt time.Time  `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
