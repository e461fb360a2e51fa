package entity

import "github.com/google/uuid"

// LocationRef is the minimal location descriptor carried by the projection.
type LocationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MerchantMembership is one merchant entry inside a UserPermissions projection.
type MerchantMembership struct {
	MerchantID               uuid.UUID      `json:"merchantId"`
	MerchantName             string         `json:"merchantName"`
	MerchantLegalName        string         `json:"merchantLegalName"`
	Role                     MerchantRole   `json:"role"`
	MerchantStatus           MerchantStatus `json:"merchantStatus"`
	BusinessType             BusinessType   `json:"businessType"`
	AccessibleLocationsCount int            `json:"accessibleLocationsCount"`
	AllLocationsCount        int            `json:"allLocationsCount"`
	AccessibleLocations      []LocationRef  `json:"accessibleLocations"`
}

// UserPermissions is the read-only projection of a user's resolved
// permissions, served to clients for conditional rendering. It is a
// time-bounded snapshot, never an enforcement boundary: every mutating
// endpoint re-runs the authorization resolver server-side.
type UserPermissions struct {
	PlatformAdmin       bool                 `json:"platformAdmin"`
	UserID              uuid.UUID            `json:"userId"`
	TotalMerchants      int                  `json:"totalMerchants"`
	MerchantMemberships []MerchantMembership `json:"merchantMemberships"`
}

// HasMerchantAccess reports whether the snapshot contains a membership for
// the given merchant.
func (p *UserPermissions) HasMerchantAccess(merchantID uuid.UUID) bool {
	if p == nil {
		return false
	}
	for _, m := range p.MerchantMemberships {
		if m.MerchantID == merchantID {
			return true
		}
	}

	return false
}

// CanAccessLocation reports whether any membership in the snapshot lists the
// location as accessible. Platform admins pass unconditionally.
func (p *UserPermissions) CanAccessLocation(locationID uuid.UUID) bool {
	if p == nil {
		return false
	}
	if p.PlatformAdmin {
		return true
	}
	for _, m := range p.MerchantMemberships {
		for _, loc := range m.AccessibleLocations {
			if loc.ID == locationID {
				return true
			}
		}
	}

	return false
}

// GetUserRole returns the snapshot role for the given merchant, RoleNone when
// no membership is present.
func (p *UserPermissions) GetUserRole(merchantID uuid.UUID) MerchantRole {
	if p == nil {
		return RoleNone
	}
	for _, m := range p.MerchantMemberships {
		if m.MerchantID == merchantID {
			return m.Role
		}
	}

	return RoleNone
}
