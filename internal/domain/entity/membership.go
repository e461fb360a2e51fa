package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MerchantRole represents the role a user holds inside a single merchant.
// Roles form a strict total order: owner > admin > manager.
type MerchantRole string

const (
	// RoleOwner has full control of the merchant, including deletion.
	RoleOwner MerchantRole = "owner"
	// RoleAdmin can edit the merchant and manage every location.
	RoleAdmin MerchantRole = "admin"
	// RoleManager operates only the locations enumerated in LocationAccess.
	RoleManager MerchantRole = "manager"
	// RoleNone is the zero value, meaning no active membership exists.
	RoleNone MerchantRole = ""
)

// roleLevels maps each role to its position in the order relation.
var roleLevels = map[MerchantRole]int{
	RoleOwner:   3,
	RoleAdmin:   2,
	RoleManager: 1,
}

// String returns the string representation of the MerchantRole.
func (r MerchantRole) String() string {
	return string(r)
}

// IsValid checks if the MerchantRole is a valid, assignable value.
// RoleNone is a valid resolver result but never a valid stored role.
func (r MerchantRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

// Level returns the role's rank in the order relation, 0 for RoleNone.
func (r MerchantRole) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether r ranks equal to or above min.
// RoleNone is below every assignable role.
func (r MerchantRole) AtLeast(min MerchantRole) bool {
	return roleLevels[r] >= roleLevels[min] && roleLevels[min] > 0
}

// Membership associates a user with a merchant, carrying the role that governs
// every merchant-scoped permission check. One row exists per (user, merchant).
type Membership struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	UserID         uuid.UUID
	Role           MerchantRole
	LocationAccess []uuid.UUID     // Consulted for managers only; nil means no locations.
	Permissions    map[string]bool // Free-form fine-grained overrides, advisory.
	IsActive       bool
	InvitedBy      *uuid.UUID
	InvitedAt      time.Time
	AcceptedAt     *time.Time
	LastActiveAt   *time.Time
	CreatedAt      time.Time
}

// GrantsLocation reports whether this membership allows operating on the given
// location, assuming the location belongs to the membership's merchant.
// Owners and admins have implicit access to every location; managers need the
// location enumerated in LocationAccess (nil is treated as the empty set).
func (m *Membership) GrantsLocation(locationID uuid.UUID) bool {
	if !m.IsActive {
		return false
	}

	switch m.Role {
	case RoleOwner, RoleAdmin:
		return true
	case RoleManager:
		return slices.Contains(m.LocationAccess, locationID)
	default:
		return false
	}
}
