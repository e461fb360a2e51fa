package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a pending membership grant. Accepting it creates the
// Membership row with the role and location-access snapshot recorded here.
type Invitation struct {
	ID             uuid.UUID
	MerchantID     uuid.UUID
	Email          string
	Role           MerchantRole
	LocationAccess []uuid.UUID // Snapshot applied to the membership on acceptance.
	InvitedBy      uuid.UUID
	Token          string // Opaque single-use token carried in the invite link.
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	CreatedAt      time.Time
}

// IsExpired reports whether the invitation can no longer be accepted.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsAccepted reports whether the invitation has already been consumed.
func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}
