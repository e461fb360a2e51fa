package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationModel mirrors the 'merchant_invitations' table. The token is the
// single-use secret carried in the invite link.
type InvitationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(50);not null"`
	LocationAccess UUIDSlice `gorm:"type:jsonb"`
	InvitedBy      uuid.UUID `gorm:"type:uuid;not null"`
	Token          string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	AcceptedAt     *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "merchant_invitations"
}
