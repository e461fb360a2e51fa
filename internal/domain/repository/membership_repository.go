package repository

import (
	"context"

	"horeca/internal/domain/entity"
	"horeca/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when no membership row exists for a lookup.
	// Absence is an expected outcome for permission checks, not a failure.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrDuplicateMembership is returned when the (merchant, user) unique constraint is violated.
	ErrDuplicateMembership = errors.New("membership already exists")
)

// MembershipRepository defines the interface for merchant-user membership persistence.
type MembershipRepository interface {
	// CreateMembership persists a new membership row.
	CreateMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembership retrieves the unique membership row for a (user, merchant) pair.
	FindMembership(ctx context.Context, userID, merchantID uuid.UUID) (*entity.Membership, error)

	// FindMembershipByID retrieves a membership row by its unique ID.
	FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error)

	// FindMembershipsByUser retrieves all memberships of a user across merchants.
	FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// FindMembershipsByMerchant retrieves all memberships of a merchant.
	FindMembershipsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Membership, error)

	// UpdateMembership modifies an existing membership (role, location access, active flag).
	UpdateMembership(ctx context.Context, membership *entity.Membership) error

	// DeleteMembership removes a membership by its ID.
	DeleteMembership(ctx context.Context, id uuid.UUID) error
}
