package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The ID is issued by the auth provider
// and mirrored here, so no database-side default is set.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Phone       string    `gorm:"type:varchar(50)"`
	FullName    string    `gorm:"type:varchar(255)"`
	AvatarURL   string    `gorm:"type:text"`
	Locale      string    `gorm:"type:varchar(10);not null;default:'nl-BE'"`
	IsActive    bool      `gorm:"not null;default:true"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
	Memberships     []MerchantUserModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
