package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonnelRole enumerates platform-wide staff roles. Only an active
// super_admin grants the platform-admin override.
type PersonnelRole string

const (
	PersonnelRoleSuperAdmin PersonnelRole = "super_admin"
	PersonnelRoleSupport    PersonnelRole = "support"
	PersonnelRoleSales      PersonnelRole = "sales"
	PersonnelRoleFinance    PersonnelRole = "finance"
	PersonnelRoleOnboarding PersonnelRole = "onboarding"
	PersonnelRoleDeveloper  PersonnelRole = "developer"
)

// String returns the string representation of the PersonnelRole.
func (r PersonnelRole) String() string {
	return string(r)
}

// IsValid checks if the PersonnelRole is a valid value.
func (r PersonnelRole) IsValid() bool {
	switch r {
	case PersonnelRoleSuperAdmin, PersonnelRoleSupport, PersonnelRoleSales,
		PersonnelRoleFinance, PersonnelRoleOnboarding, PersonnelRoleDeveloper:
		return true
	default:
		return false
	}
}

// PlatformPersonnel flags a user as platform staff. A missing row means the
// user is not staff; nothing defaults to true.
type PlatformPersonnel struct {
	UserID      uuid.UUID
	Role        PersonnelRole
	Department  string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// IsPlatformAdmin reports whether this record grants the platform-admin
// override: an active super_admin, nothing less.
func (p *PlatformPersonnel) IsPlatformAdmin() bool {
	return p.Role == PersonnelRoleSuperAdmin && p.IsActive
}
