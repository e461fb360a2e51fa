package impl

import (
	"context"
	"log/slog"

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

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	membershipRepo repository.MembershipRepository
	authz          usecase.AuthorizationUsecase
	permissions    usecase.PermissionUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// MembershipServiceParams holds dependencies for the membership service, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	MembershipRepo repository.MembershipRepository
	Authorization  usecase.AuthorizationUsecase
	Permissions    usecase.PermissionUsecase
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return &membershipService{
		membershipRepo: params.MembershipRepo,
		authz:          params.Authorization,
		permissions:    params.Permissions,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMembers returns every membership of the merchant. Requires the admin role.
func (srv *membershipService) ListMembers(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Membership, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	memberships, err := srv.membershipRepo.FindMembershipsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find memberships")
	}

	return memberships, nil
}

// GetMyMemberships returns the actor's own memberships across merchants.
func (srv *membershipService) GetMyMemberships(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	memberships, err := srv.membershipRepo.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find memberships")
	}

	return memberships, nil
}

// UpdateMembership applies the given changes to a member. Requires the admin
// role; changes touching an owner require the owner role.
func (srv *membershipService) UpdateMembership(ctx context.Context, actorID, merchantID, membershipID uuid.UUID, input *usecase.UpdateMembershipInput) (*entity.Membership, error) {
	target, err := srv.authorizeMemberMutation(ctx, actorID, merchantID, membershipID, input.Role)
	if err != nil {
		return nil, err
	}

	demoting := input.Role != nil && *input.Role != entity.RoleOwner
	deactivating := input.IsActive != nil && !*input.IsActive
	if target.Role == entity.RoleOwner && (demoting || deactivating) {
		if err := srv.ensureNotLastOwner(ctx, merchantID, target.ID); err != nil {
			return nil, err
		}
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
		}
		target.Role = *input.Role
	}
	if input.LocationAccess != nil {
		target.LocationAccess = *input.LocationAccess
	}
	if input.Permissions != nil {
		target.Permissions = input.Permissions
	}
	if input.IsActive != nil {
		target.IsActive = *input.IsActive
	}

	if err := srv.membershipRepo.UpdateMembership(ctx, target); err != nil {
		return nil, errors.Wrap(err, "failed to update membership")
	}

	srv.invalidateMemberState(ctx, target.UserID, merchantID)
	publishAudit(ctx, srv.log(ctx), srv.publisher, "membership.updated", actorID, merchantID.String(), target.UserID.String())
	srv.log(ctx).Info("Membership updated",
		slog.Any("merchant_id", merchantID),
		slog.Any("membership_id", membershipID),
		slog.String("role", target.Role.String()))

	return target, nil
}

// RemoveMembership removes a member from the merchant. Requires the admin
// role; removing an owner requires the owner role.
func (srv *membershipService) RemoveMembership(ctx context.Context, actorID, merchantID, membershipID uuid.UUID) error {
	target, err := srv.authorizeMemberMutation(ctx, actorID, merchantID, membershipID, nil)
	if err != nil {
		return err
	}

	if target.Role == entity.RoleOwner {
		if err := srv.ensureNotLastOwner(ctx, merchantID, target.ID); err != nil {
			return err
		}
	}

	if err := srv.membershipRepo.DeleteMembership(ctx, membershipID); err != nil {
		return errors.Wrap(err, "failed to delete membership")
	}

	srv.invalidateMemberState(ctx, target.UserID, merchantID)
	publishAudit(ctx, srv.log(ctx), srv.publisher, "membership.removed", actorID, merchantID.String(), target.UserID.String())
	srv.log(ctx).Info("Membership removed",
		slog.Any("merchant_id", merchantID),
		slog.Any("membership_id", membershipID))

	return nil
}

// authorizeMemberMutation loads the target membership and checks the actor
// may touch it: admins manage members, but only owners (or platform admins)
// touch owner memberships or grant the owner role.
func (srv *membershipService) authorizeMemberMutation(ctx context.Context, actorID, merchantID, membershipID uuid.UUID, newRole *entity.MerchantRole) (*entity.Membership, error) {
	actorRole := srv.authz.ResolveRole(ctx, actorID, merchantID)
	platformAdmin := srv.authz.IsPlatformAdmin(ctx, actorID)
	if !actorRole.AtLeast(entity.RoleAdmin) && !platformAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("member management requires the admin role")
	}

	target, err := srv.membershipRepo.FindMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrMembershipNotFound.WrapMessage("membership not found")
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}
	if target.MerchantID != merchantID {
		return nil, domainerrors.ErrMembershipNotFound.WrapMessage("membership not found")
	}

	ownerInvolved := target.Role == entity.RoleOwner || (newRole != nil && *newRole == entity.RoleOwner)
	if ownerInvolved && actorRole != entity.RoleOwner && !platformAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("owner memberships can only be changed by an owner")
	}

	return target, nil
}

// ensureNotLastOwner rejects a mutation that would leave the merchant with no
// active owner.
func (srv *membershipService) ensureNotLastOwner(ctx context.Context, merchantID, targetMembershipID uuid.UUID) error {
	memberships, err := srv.membershipRepo.FindMembershipsByMerchant(ctx, merchantID)
	if err != nil {
		return errors.Wrap(err, "failed to count owners")
	}

	for _, membership := range memberships {
		if membership.ID == targetMembershipID {
			continue
		}
		if membership.Role == entity.RoleOwner && membership.IsActive {
			return nil
		}
	}

	return domainerrors.ErrConflict.WrapMessage("a merchant must keep at least one active owner")
}

// invalidateMemberState drops the member's cached role and permission
// snapshot so the mutation takes effect within one request.
func (srv *membershipService) invalidateMemberState(ctx context.Context, userID, merchantID uuid.UUID) {
	srv.authz.InvalidateMembership(ctx, userID, merchantID)
	if err := srv.permissions.InvalidateUserPermissions(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate permission snapshot",
			slog.Any("user_id", userID),
			slog.Any("error", err))
	}
}
