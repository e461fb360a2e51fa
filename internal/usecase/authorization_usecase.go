package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthorizationUsecase resolves what an authenticated user may do. It is the
// single enforcement point consulted by every merchant-scoped operation.
//
// The resolver fails closed: any internal error (database down, malformed
// cache entry) is logged and resolved as RoleNone / false rather than
// surfaced, so an outage can never widen access.
type AuthorizationUsecase interface {
	// ResolveRole returns the user's active role within the merchant,
	// RoleNone when no active membership exists.
	ResolveRole(ctx context.Context, userID, merchantID uuid.UUID) entity.MerchantRole

	// RequireRole resolves the user's role and returns ErrForbidden when it
	// ranks below min. Platform admins pass unconditionally.
	RequireRole(ctx context.Context, userID, merchantID uuid.UUID, min entity.MerchantRole) error

	// CanAccessLocation reports whether the user may operate on the location.
	// Owners and admins of the owning merchant always may; managers need the
	// location listed in their access set. Platform admins pass unconditionally.
	CanAccessLocation(ctx context.Context, userID, locationID uuid.UUID) bool

	// IsPlatformAdmin reports whether the user holds the platform-admin
	// override (an active super_admin personnel record).
	IsPlatformAdmin(ctx context.Context, userID uuid.UUID) bool

	// InvalidateMembership drops the cached role for a (user, merchant) pair.
	// Called after any membership mutation so revocations take effect.
	InvalidateMembership(ctx context.Context, userID, merchantID uuid.UUID)

	// InvalidateLocation drops the cached location-to-merchant binding.
	InvalidateLocation(ctx context.Context, locationID uuid.UUID)

	// InvalidatePlatformAdmin drops the cached platform-admin verdict.
	InvalidatePlatformAdmin(ctx context.Context, userID uuid.UUID)
}
