package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType enumerates the kinds of hospitality businesses a merchant can be.
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeCafe       BusinessType = "cafe"
	BusinessTypeBar        BusinessType = "bar"
	BusinessTypeBakery     BusinessType = "bakery"
	BusinessTypeFoodTruck  BusinessType = "food_truck"
	BusinessTypeOther      BusinessType = "other"
)

// String returns the string representation of the BusinessType.
func (b BusinessType) String() string {
	return string(b)
}

// IsValid checks if the BusinessType is a valid value.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeRestaurant, BusinessTypeCafe, BusinessTypeBar,
		BusinessTypeBakery, BusinessTypeFoodTruck, BusinessTypeOther:
		return true
	default:
		return false
	}
}

// MerchantStatus enumerates the lifecycle states of a merchant tenant.
type MerchantStatus string

const (
	MerchantStatusOnboarding MerchantStatus = "onboarding"
	MerchantStatusActive     MerchantStatus = "active"
	MerchantStatusSuspended  MerchantStatus = "suspended"
	MerchantStatusInactive   MerchantStatus = "inactive"
)

// String returns the string representation of the MerchantStatus.
func (s MerchantStatus) String() string {
	return string(s)
}

// IsValid checks if the MerchantStatus is a valid value.
func (s MerchantStatus) IsValid() bool {
	switch s {
	case MerchantStatusOnboarding, MerchantStatusActive, MerchantStatusSuspended, MerchantStatusInactive:
		return true
	default:
		return false
	}
}

// SubscriptionTier enumerates the billing tiers a merchant can subscribe to.
type SubscriptionTier string

const (
	SubscriptionTierTrial      SubscriptionTier = "trial"
	SubscriptionTierBasic      SubscriptionTier = "basic"
	SubscriptionTierPro        SubscriptionTier = "pro"
	SubscriptionTierEnterprise SubscriptionTier = "enterprise"
)

// String returns the string representation of the SubscriptionTier.
func (t SubscriptionTier) String() string {
	return string(t)
}

// IsValid checks if the SubscriptionTier is a valid value.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierTrial, SubscriptionTierBasic, SubscriptionTierPro, SubscriptionTierEnterprise:
		return true
	default:
		return false
	}
}

// Merchant is the tenant root. Every location and membership belongs to
// exactly one merchant; deleting the merchant cascades to both.
type Merchant struct {
	ID                    uuid.UUID
	Name                  string
	LegalName             string
	KBONumber             string // Belgian enterprise number, optional.
	ContactEmail          string
	Phone                 string
	Address               string
	BusinessType          BusinessType
	Status                MerchantStatus
	SubscriptionTier      SubscriptionTier
	SubscriptionExpiresAt *time.Time
	Timezone              string
	Currency              string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
