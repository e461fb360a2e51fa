package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateMembershipInput defines the mutable membership fields. Nil means unchanged.
type UpdateMembershipInput struct {
	Role           *entity.MerchantRole
	LocationAccess *[]uuid.UUID
	Permissions    map[string]bool
	IsActive       *bool
}

// MembershipUsecase defines the interface for managing a merchant's staff.
//
// Owner memberships are protected: only an owner may change or remove another
// owner, and the last owner of a merchant can never be demoted or removed.
type MembershipUsecase interface {
	// ListMembers returns every membership of the merchant. Requires the
	// admin role.
	ListMembers(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Membership, error)

	// GetMyMemberships returns the actor's own memberships across merchants.
	GetMyMemberships(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// UpdateMembership applies the given changes to a member. Requires the
	// admin role; changes touching an owner require the owner role.
	UpdateMembership(ctx context.Context, actorID, merchantID, membershipID uuid.UUID, input *UpdateMembershipInput) (*entity.Membership, error)

	// RemoveMembership removes a member from the merchant. Requires the
	// admin role; removing an owner requires the owner role.
	RemoveMembership(ctx context.Context, actorID, merchantID, membershipID uuid.UUID) error
}
