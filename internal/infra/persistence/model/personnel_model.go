package model

import (
	"time"

	"github.com/google/uuid"
)

// PlatformPersonnelModel mirrors the 'platform_personnel' table. A missing
// row means the user is not platform staff.
type PlatformPersonnelModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Role        string    `gorm:"type:varchar(50);not null"`
	Department  string    `gorm:"type:varchar(100)"`
	IsActive    bool      `gorm:"not null;default:true"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformPersonnelModel) TableName() string {
	return "platform_personnel"
}
