package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'merchant_locations' table.
type LocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:text;not null"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	City         string    `gorm:"type:varchar(100)"`
	Latitude     *float64  `gorm:"type:decimal(10,7)"`
	Longitude    *float64  `gorm:"type:decimal(10,7)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Email        string    `gorm:"type:varchar(255)"`
	LogoURL      string    `gorm:"type:text"`
	BannerURL    string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(50);not null;default:'active';index"`
	OpeningHours StringMap `gorm:"type:jsonb"`
	Settings     JSONObject `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "merchant_locations"
}
