package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel mirrors the 'merchants' table, the tenant root. Locations and
// memberships cascade on delete.
type MerchantModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	LegalName             string    `gorm:"type:varchar(255)"`
	KboNumber             string    `gorm:"type:varchar(20)"`
	ContactEmail          string    `gorm:"type:varchar(255);not null"`
	Phone                 string    `gorm:"type:varchar(50)"`
	Address               string    `gorm:"type:text"`
	BusinessType          string    `gorm:"type:varchar(50);not null"`
	Status                string    `gorm:"type:varchar(50);not null;default:'onboarding';index"`
	SubscriptionTier      string    `gorm:"type:varchar(50);not null;default:'trial'"`
	SubscriptionExpiresAt *time.Time
	Timezone              string `gorm:"type:varchar(64);not null;default:'Europe/Brussels'"`
	Currency              string `gorm:"type:varchar(3);not null;default:'EUR'"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Locations []LocationModel     `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
	Members   []MerchantUserModel `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
