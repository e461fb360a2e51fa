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
	"horeca/internal/domain/repository"
	"horeca/internal/domain/service"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const profileKeyPrefix = "user-permissions"

const defaultProfileTTL = 5 * time.Minute

// permissionService implements the PermissionUsecase interface.
//
// It assembles the client-facing permission snapshot: one pass over the
// user's active memberships, joined with merchant and location data, cached
// on the shared substrate under a short TTL.
type permissionService struct {
	membershipRepo repository.MembershipRepository
	merchantRepo   repository.MerchantRepository
	locationRepo   repository.LocationRepository
	authz          usecase.AuthorizationUsecase
	permCache      service.PermissionCache
	profileTTL     time.Duration
	logger         *slog.Logger
}

// PermissionServiceParams holds dependencies for the permission service, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	MembershipRepo repository.MembershipRepository
	MerchantRepo   repository.MerchantRepository
	LocationRepo   repository.LocationRepository
	Authorization  usecase.AuthorizationUsecase
	PermCache      service.PermissionCache
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	profileTTL := defaultProfileTTL
	if params.Config != nil && params.Config.PermissionCache != nil && params.Config.PermissionCache.ProfileTTL > 0 {
		profileTTL = params.Config.PermissionCache.ProfileTTL
	}

	return &permissionService{
		membershipRepo: params.MembershipRepo,
		merchantRepo:   params.MerchantRepo,
		locationRepo:   params.LocationRepo,
		authz:          params.Authorization,
		permCache:      params.PermCache,
		profileTTL:     profileTTL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *permissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func profileKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", profileKeyPrefix, userID)
}

// GetUserPermissions assembles the user's permission snapshot across all merchants.
func (srv *permissionService) GetUserPermissions(ctx context.Context, userID uuid.UUID) (*entity.UserPermissions, error) {
	data, err := srv.permCache.GetOrCompute(ctx, profileKey(userID), srv.profileTTL, func(ctx context.Context) ([]byte, error) {
		permissions, err := srv.buildUserPermissions(ctx, userID)
		if err != nil {
			return nil, err
		}

		return json.Marshal(permissions)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to build permission snapshot",
			slog.Any("user_id", userID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build permission snapshot")
	}

	permissions := new(entity.UserPermissions)
	if err := json.Unmarshal(data, permissions); err != nil {
		if invErr := srv.InvalidateUserPermissions(ctx, userID); invErr != nil {
			srv.log(ctx).Warn("Failed to drop malformed permission snapshot",
				slog.Any("user_id", userID),
				slog.Any("error", invErr))
		}

		return nil, errors.Wrap(err, "malformed cached permission snapshot")
	}

	return permissions, nil
}

// InvalidateUserPermissions drops the cached snapshot.
func (srv *permissionService) InvalidateUserPermissions(ctx context.Context, userID uuid.UUID) error {
	if err := srv.permCache.Invalidate(ctx, profileKey(userID)); err != nil {
		return errors.Wrap(err, "failed to invalidate permission snapshot")
	}

	return nil
}

// buildUserPermissions reads the authoritative state: every active
// membership, its merchant and the locations the role actually reaches.
func (srv *permissionService) buildUserPermissions(ctx context.Context, userID uuid.UUID) (*entity.UserPermissions, error) {
	memberships, err := srv.membershipRepo.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find memberships")
	}

	permissions := &entity.UserPermissions{
		PlatformAdmin:       srv.authz.IsPlatformAdmin(ctx, userID),
		UserID:              userID,
		MerchantMemberships: make([]entity.MerchantMembership, 0, len(memberships)),
	}

	for _, membership := range memberships {
		if !membership.IsActive {
			continue
		}

		entry, err := srv.buildMembershipEntry(ctx, membership)
		if err != nil {
			return nil, err
		}
		permissions.MerchantMemberships = append(permissions.MerchantMemberships, *entry)
	}
	permissions.TotalMerchants = len(permissions.MerchantMemberships)

	return permissions, nil
}

func (srv *permissionService) buildMembershipEntry(ctx context.Context, membership *entity.Membership) (*entity.MerchantMembership, error) {
	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, membership.MerchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merchant")
	}

	locations, err := srv.locationRepo.FindLocationsByMerchant(ctx, membership.MerchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	accessible := make([]entity.LocationRef, 0, len(locations))
	for _, location := range locations {
		if membership.Role == entity.RoleManager && !slices.Contains(membership.LocationAccess, location.ID) {
			continue
		}
		accessible = append(accessible, entity.LocationRef{
			ID:   location.ID,
			Name: location.Name,
		})
	}

	return &entity.MerchantMembership{
		MerchantID:               merchant.ID,
		MerchantName:             merchant.Name,
		MerchantLegalName:        merchant.LegalName,
		Role:                     membership.Role,
		MerchantStatus:           merchant.Status,
		BusinessType:             merchant.BusinessType,
		AccessibleLocationsCount: len(accessible),
		AllLocationsCount:        len(locations),
		AccessibleLocations:      accessible,
	}, nil
}
