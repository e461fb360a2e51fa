// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"horeca/config"
	deliverycontext "horeca/internal/delivery/context"
	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	"horeca/internal/domain/service"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Cache key prefixes of the authorization resolver. Invalidation must use the
// same prefixes, so they live in one place.
const (
	roleKeyPrefix     = "merchant-user-role"
	locationKeyPrefix = "location-merchant"
	adminKeyPrefix    = "platform-personnel"
)

const defaultRoleTTL = 5 * time.Minute

// cachedMembership is the substrate form of a resolved membership. A RoleNone
// entry is a cached negative: the user holds no active membership, and we
// remember that to spare repeated lookups.
type cachedMembership struct {
	Role           entity.MerchantRole `json:"role"`
	LocationAccess []uuid.UUID         `json:"locationAccess,omitempty"`
}

// authorizationService implements the AuthorizationUsecase interface.
//
// It layers two caches over the database: a shared TTL substrate for role and
// location lookups, and a short-lived process-local cache for platform-admin
// verdicts. Both are optimizations only; any failure resolves fail-closed.
type authorizationService struct {
	membershipRepo repository.MembershipRepository
	locationRepo   repository.LocationRepository
	personnelRepo  repository.PersonnelRepository
	permCache      service.PermissionCache
	adminCache     service.AdminVerdictCache
	roleTTL        time.Duration
	logger         *slog.Logger
}

// AuthorizationServiceParams holds dependencies for the authorization service, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	MembershipRepo repository.MembershipRepository
	LocationRepo   repository.LocationRepository
	PersonnelRepo  repository.PersonnelRepository
	PermCache      service.PermissionCache
	AdminCache     service.AdminVerdictCache
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	roleTTL := defaultRoleTTL
	if params.Config != nil && params.Config.PermissionCache != nil && params.Config.PermissionCache.RoleTTL > 0 {
		roleTTL = params.Config.PermissionCache.RoleTTL
	}

	return &authorizationService{
		membershipRepo: params.MembershipRepo,
		locationRepo:   params.LocationRepo,
		personnelRepo:  params.PersonnelRepo,
		permCache:      params.PermCache,
		adminCache:     params.AdminCache,
		roleTTL:        roleTTL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func roleKey(userID, merchantID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", roleKeyPrefix, userID, merchantID)
}

func locationKey(locationID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", locationKeyPrefix, locationID)
}

func adminKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", adminKeyPrefix, userID)
}

// ResolveRole returns the user's active role within the merchant.
// Any internal error resolves to RoleNone.
func (srv *authorizationService) ResolveRole(ctx context.Context, userID, merchantID uuid.UUID) entity.MerchantRole {
	membership, err := srv.resolveMembership(ctx, userID, merchantID)
	if err != nil {
		srv.log(ctx).Warn("Role resolution failed, denying access",
			slog.Any("user_id", userID),
			slog.Any("merchant_id", merchantID),
			slog.Any("error", err))

		return entity.RoleNone
	}

	return membership.Role
}

// RequireRole resolves the user's role and rejects anything below min.
// Platform admins pass unconditionally.
func (srv *authorizationService) RequireRole(ctx context.Context, userID, merchantID uuid.UUID, min entity.MerchantRole) error {
	if srv.ResolveRole(ctx, userID, merchantID).AtLeast(min) {
		return nil
	}
	if srv.IsPlatformAdmin(ctx, userID) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage(
		fmt.Sprintf("requires at least the %s role", min))
}

// CanAccessLocation reports whether the user may operate on the location.
func (srv *authorizationService) CanAccessLocation(ctx context.Context, userID, locationID uuid.UUID) bool {
	if srv.IsPlatformAdmin(ctx, userID) {
		return true
	}

	merchantID, err := srv.resolveLocationMerchant(ctx, locationID)
	if err != nil {
		if !errors.Is(err, repository.ErrLocationNotFound) {
			srv.log(ctx).Warn("Location resolution failed, denying access",
				slog.Any("location_id", locationID),
				slog.Any("error", err))
		}

		return false
	}

	membership, err := srv.resolveMembership(ctx, userID, merchantID)
	if err != nil {
		srv.log(ctx).Warn("Role resolution failed, denying access",
			slog.Any("user_id", userID),
			slog.Any("merchant_id", merchantID),
			slog.Any("error", err))

		return false
	}

	switch membership.Role {
	case entity.RoleOwner, entity.RoleAdmin:
		return true
	case entity.RoleManager:
		return slices.Contains(membership.LocationAccess, locationID)
	default:
		return false
	}
}

// IsPlatformAdmin reports whether the user holds the platform-admin override.
func (srv *authorizationService) IsPlatformAdmin(ctx context.Context, userID uuid.UUID) bool {
	key := adminKey(userID)
	if verdict, ok := srv.adminCache.Get(key); ok {
		return verdict
	}

	personnel, err := srv.personnelRepo.FindPersonnelByUserID(ctx, userID)
	if errors.Is(err, repository.ErrPersonnelNotFound) {
		// Not staff at all. Cache the negative so ordinary users don't hit
		// the personnel table on every admin-path request.
		srv.adminCache.Add(key, false)

		return false
	}
	if err != nil {
		// Transient failure: deny without caching so recovery is immediate.
		srv.log(ctx).Warn("Platform admin check failed, denying override",
			slog.Any("user_id", userID),
			slog.Any("error", err))

		return false
	}

	verdict := personnel.IsPlatformAdmin()
	srv.adminCache.Add(key, verdict)

	return verdict
}

// InvalidateMembership drops the cached role for a (user, merchant) pair.
func (srv *authorizationService) InvalidateMembership(ctx context.Context, userID, merchantID uuid.UUID) {
	if err := srv.permCache.Invalidate(ctx, roleKey(userID, merchantID)); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached role",
			slog.Any("user_id", userID),
			slog.Any("merchant_id", merchantID),
			slog.Any("error", err))
	}
}

// InvalidateLocation drops the cached location-to-merchant binding.
func (srv *authorizationService) InvalidateLocation(ctx context.Context, locationID uuid.UUID) {
	if err := srv.permCache.Invalidate(ctx, locationKey(locationID)); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached location binding",
			slog.Any("location_id", locationID),
			slog.Any("error", err))
	}
}

// InvalidatePlatformAdmin drops the cached platform-admin verdict.
func (srv *authorizationService) InvalidatePlatformAdmin(_ context.Context, userID uuid.UUID) {
	srv.adminCache.Remove(adminKey(userID))
}

// resolveMembership returns the user's membership snapshot for the merchant,
// served from the substrate when fresh. An absent or inactive membership is a
// valid result carrying RoleNone, and gets cached like any other.
func (srv *authorizationService) resolveMembership(ctx context.Context, userID, merchantID uuid.UUID) (*cachedMembership, error) {
	data, err := srv.permCache.GetOrCompute(ctx, roleKey(userID, merchantID), srv.roleTTL, func(ctx context.Context) ([]byte, error) {
		membership, err := srv.membershipRepo.FindMembership(ctx, userID, merchantID)
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return json.Marshal(&cachedMembership{Role: entity.RoleNone})
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find membership")
		}
		if !membership.IsActive {
			return json.Marshal(&cachedMembership{Role: entity.RoleNone})
		}

		return json.Marshal(&cachedMembership{
			Role:           membership.Role,
			LocationAccess: membership.LocationAccess,
		})
	})
	if err != nil {
		return nil, err
	}

	cached := new(cachedMembership)
	if err := json.Unmarshal(data, cached); err != nil {
		// A corrupt entry must not linger; drop it so the next check recomputes.
		srv.InvalidateMembership(ctx, userID, merchantID)

		return nil, errors.Wrap(err, "malformed cached membership")
	}

	return cached, nil
}

// resolveLocationMerchant returns the merchant owning the location, served
// from the substrate when fresh. The binding is immutable for the lifetime of
// a location, so a cached value never goes stale while the location exists.
func (srv *authorizationService) resolveLocationMerchant(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error) {
	data, err := srv.permCache.GetOrCompute(ctx, locationKey(locationID), srv.roleTTL, func(ctx context.Context) ([]byte, error) {
		merchantID, err := srv.locationRepo.FindLocationMerchant(ctx, locationID)
		if err != nil {
			return nil, err
		}

		return []byte(merchantID.String()), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	merchantID, err := uuid.ParseBytes(data)
	if err != nil {
		srv.InvalidateLocation(ctx, locationID)

		return uuid.Nil, errors.Wrap(err, "malformed cached location binding")
	}

	return merchantID, nil
}
