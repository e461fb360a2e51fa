package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantUserModel mirrors the 'merchant_users' table: one row per
// (merchant, user) pair, carrying the role every permission check reads.
type MerchantUserModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_merchant_users_merchant_user"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_merchant_users_merchant_user;index"`
	Role           string     `gorm:"type:varchar(50);not null"`
	LocationAccess UUIDSlice  `gorm:"type:jsonb"`
	Permissions    BoolMap    `gorm:"type:jsonb"`
	IsActive       bool       `gorm:"not null;default:true"`
	InvitedBy      *uuid.UUID `gorm:"type:uuid"`
	InvitedAt      time.Time
	AcceptedAt     *time.Time
	LastActiveAt   *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantUserModel) TableName() string {
	return "merchant_users"
}
