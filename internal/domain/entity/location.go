package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationStatus enumerates the operational states of a merchant location.
type LocationStatus string

const (
	LocationStatusComingSoon        LocationStatus = "coming_soon"
	LocationStatusActive            LocationStatus = "active"
	LocationStatusTemporarilyClosed LocationStatus = "temporarily_closed"
	LocationStatusClosed            LocationStatus = "closed"
)

// String returns the string representation of the LocationStatus.
func (s LocationStatus) String() string {
	return string(s)
}

// IsValid checks if the LocationStatus is a valid value.
func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationStatusComingSoon, LocationStatusActive, LocationStatusTemporarilyClosed, LocationStatusClosed:
		return true
	default:
		return false
	}
}

// LocationSettings holds per-location operational settings.
type LocationSettings struct {
	TaxRate                 *float64 `json:"tax_rate,omitempty"`
	ServiceChargePercentage *float64 `json:"service_charge_percentage,omitempty"`
	AcceptsCash             *bool    `json:"accepts_cash,omitempty"`
	AcceptsCards            *bool    `json:"accepts_cards,omitempty"`
}

// Location is a physical venue belonging to exactly one merchant.
type Location struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID // Owning merchant; cascade deleted with it.
	Name         string
	Address      string
	PostalCode   string
	City         string
	Latitude     *float64
	Longitude    *float64
	Phone        string
	Email        string
	LogoURL      string
	BannerURL    string
	Status       LocationStatus
	OpeningHours map[string]string // Weekday -> opening hours, free-form.
	Settings     *LocationSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
