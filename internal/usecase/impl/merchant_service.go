package impl

import (
	"context"
	"log/slog"
	"time"

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

const (
	defaultTimezone = "Europe/Brussels"
	defaultCurrency = "EUR"

	defaultListLimit = 50
	maxListLimit     = 200
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	txManager    repository.TransactionManager
	merchantRepo repository.MerchantRepository
	authz        usecase.AuthorizationUsecase
	permissions  usecase.PermissionUsecase
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for the merchant service, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	MerchantRepo  repository.MerchantRepository
	Authorization usecase.AuthorizationUsecase
	Permissions   usecase.PermissionUsecase
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:    params.TxManager,
		merchantRepo: params.MerchantRepo,
		authz:        params.Authorization,
		permissions:  params.Permissions,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *merchantService) publishAudit(ctx context.Context, action string, actorID uuid.UUID, merchantID, subjectID string) {
	publishAudit(ctx, srv.log(ctx), srv.publisher, action, actorID, merchantID, subjectID)
}

// CreateMerchant creates a merchant, its first location and an owner
// membership for the actor, atomically.
func (srv *merchantService) CreateMerchant(ctx context.Context, actorID uuid.UUID, input *usecase.CreateMerchantInput) (*entity.Merchant, error) {
	srv.log(ctx).Info("Creating merchant", slog.String("name", input.Name), slog.Any("actor_id", actorID))

	businessType := input.BusinessType
	if businessType == "" {
		businessType = entity.BusinessTypeOther
	}
	if !businessType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid business type")
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var createdMerchant *entity.Merchant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		merchantRepo := repoFactory.MerchantRepo()
		locationRepo := repoFactory.LocationRepo()
		membershipRepo := repoFactory.MembershipRepo()

		newMerchant := &entity.Merchant{
			ID:               uuid.New(),
			Name:             input.Name,
			LegalName:        input.LegalName,
			KBONumber:        input.KBONumber,
			ContactEmail:     input.ContactEmail,
			Phone:            input.Phone,
			Address:          input.Address,
			BusinessType:     businessType,
			Status:           entity.MerchantStatusOnboarding,
			SubscriptionTier: entity.SubscriptionTierTrial,
			Timezone:         timezone,
			Currency:         currency,
		}
		if err := merchantRepo.CreateMerchant(ctx, newMerchant); err != nil {
			return errors.WithStack(err)
		}

		firstLocation := buildLocation(newMerchant.ID, &input.FirstLocation)
		if err := locationRepo.CreateLocation(ctx, firstLocation); err != nil {
			return errors.WithStack(err)
		}

		now := time.Now()
		ownerMembership := &entity.Membership{
			ID:         uuid.New(),
			MerchantID: newMerchant.ID,
			UserID:     actorID,
			Role:       entity.RoleOwner,
			IsActive:   true,
			InvitedAt:  now,
			AcceptedAt: &now,
		}
		if err := membershipRepo.CreateMembership(ctx, ownerMembership); err != nil {
			return errors.WithStack(err)
		}
		createdMerchant = newMerchant

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute merchant creation transaction",
			slog.String("name", input.Name),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute merchant creation transaction")
	}

	srv.invalidateActorState(ctx, actorID, createdMerchant.ID)
	srv.publishAudit(ctx, "merchant.created", actorID, createdMerchant.ID.String(), "")
	srv.log(ctx).Info("Merchant created", slog.Any("merchant_id", createdMerchant.ID))

	return createdMerchant, nil
}

// GetMerchant returns a merchant the actor is a member of.
func (srv *merchantService) GetMerchant(ctx context.Context, actorID, merchantID uuid.UUID) (*entity.Merchant, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleManager); err != nil {
		return nil, err
	}

	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound.WrapMessage("merchant not found")
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return merchant, nil
}

// ListMerchants pages through all merchants. Platform administrators only.
func (srv *merchantService) ListMerchants(ctx context.Context, actorID uuid.UUID, offset, limit int) ([]*entity.Merchant, error) {
	if !srv.authz.IsPlatformAdmin(ctx, actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("merchant listing requires platform administration")
	}

	if offset < 0 {
		offset = 0
	}
	limit = clampLimit(limit)

	merchants, err := srv.merchantRepo.ListMerchants(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return merchants, nil
}

// SearchMerchants matches merchants by name or legal name. Platform administrators only.
func (srv *merchantService) SearchMerchants(ctx context.Context, actorID uuid.UUID, query string, limit int) ([]*entity.Merchant, error) {
	if !srv.authz.IsPlatformAdmin(ctx, actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("merchant search requires platform administration")
	}
	if query == "" {
		return []*entity.Merchant{}, nil
	}

	merchants, err := srv.merchantRepo.SearchMerchants(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search merchants")
	}

	return merchants, nil
}

// UpdateMerchant applies the given changes. Requires the admin role; status
// transitions additionally require the platform-admin override.
func (srv *merchantService) UpdateMerchant(ctx context.Context, actorID, merchantID uuid.UUID, input *usecase.UpdateMerchantInput) (*entity.Merchant, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Status != nil && !srv.authz.IsPlatformAdmin(ctx, actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("merchant status transitions require platform administration")
	}

	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound.WrapMessage("merchant not found")
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	if err := applyMerchantUpdates(merchant, input); err != nil {
		return nil, err
	}

	if err := srv.merchantRepo.UpdateMerchant(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to update merchant")
	}

	srv.publishAudit(ctx, "merchant.updated", actorID, merchantID.String(), "")

	return merchant, nil
}

// DeleteMerchant removes the merchant and, by cascade, its locations and
// memberships. Requires the owner role or the platform-admin override.
func (srv *merchantService) DeleteMerchant(ctx context.Context, actorID, merchantID uuid.UUID) error {
	if srv.authz.ResolveRole(ctx, actorID, merchantID) != entity.RoleOwner && !srv.authz.IsPlatformAdmin(ctx, actorID) {
		return domainerrors.ErrForbidden.WrapMessage("merchant deletion requires the owner role")
	}

	// Collected before deletion so the cascade cannot orphan stale cache entries.
	var memberships []*entity.Membership
	var locations []*entity.Location

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		memberships, err = repoFactory.MembershipRepo().FindMembershipsByMerchant(ctx, merchantID)
		if err != nil {
			return errors.Wrap(err, "failed to find memberships")
		}
		locations, err = repoFactory.LocationRepo().FindLocationsByMerchant(ctx, merchantID)
		if err != nil {
			return errors.Wrap(err, "failed to find locations")
		}

		if err := repoFactory.MerchantRepo().DeleteMerchant(ctx, merchantID); err != nil {
			if errors.Is(err, repository.ErrMerchantNotFound) {
				return domainerrors.ErrMerchantNotFound.WrapMessage("merchant not found")
			}

			return errors.Wrap(err, "failed to delete merchant")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute merchant deletion transaction",
			slog.Any("merchant_id", merchantID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute merchant deletion transaction")
	}

	for _, membership := range memberships {
		srv.authz.InvalidateMembership(ctx, membership.UserID, merchantID)
		if invErr := srv.permissions.InvalidateUserPermissions(ctx, membership.UserID); invErr != nil {
			srv.log(ctx).Warn("Failed to invalidate permission snapshot",
				slog.Any("user_id", membership.UserID),
				slog.Any("error", invErr))
		}
	}
	for _, location := range locations {
		srv.authz.InvalidateLocation(ctx, location.ID)
	}

	srv.publishAudit(ctx, "merchant.deleted", actorID, merchantID.String(), "")
	srv.log(ctx).Info("Merchant deleted", slog.Any("merchant_id", merchantID), slog.Any("actor_id", actorID))

	return nil
}

// invalidateActorState drops the actor's cached role and permission snapshot
// after a membership-affecting mutation.
func (srv *merchantService) invalidateActorState(ctx context.Context, actorID, merchantID uuid.UUID) {
	srv.authz.InvalidateMembership(ctx, actorID, merchantID)
	if err := srv.permissions.InvalidateUserPermissions(ctx, actorID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate permission snapshot",
			slog.Any("user_id", actorID),
			slog.Any("error", err))
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func applyMerchantUpdates(merchant *entity.Merchant, input *usecase.UpdateMerchantInput) error {
	if input.Name != nil {
		merchant.Name = *input.Name
	}
	if input.LegalName != nil {
		merchant.LegalName = *input.LegalName
	}
	if input.KBONumber != nil {
		merchant.KBONumber = *input.KBONumber
	}
	if input.ContactEmail != nil {
		merchant.ContactEmail = *input.ContactEmail
	}
	if input.Phone != nil {
		merchant.Phone = *input.Phone
	}
	if input.Address != nil {
		merchant.Address = *input.Address
	}
	if input.BusinessType != nil {
		if !input.BusinessType.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business type")
		}
		merchant.BusinessType = *input.BusinessType
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid merchant status")
		}
		merchant.Status = *input.Status
	}
	if input.Timezone != nil {
		merchant.Timezone = *input.Timezone
	}
	if input.Currency != nil {
		merchant.Currency = *input.Currency
	}

	return nil
}

// buildLocation assembles a location entity from creation input.
func buildLocation(merchantID uuid.UUID, input *usecase.CreateLocationInput) *entity.Location {
	status := input.Status
	if status == "" {
		status = entity.LocationStatusComingSoon
	}

	return &entity.Location{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Name:         input.Name,
		Address:      input.Address,
		PostalCode:   input.PostalCode,
		City:         input.City,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Phone:        input.Phone,
		Email:        input.Email,
		Status:       status,
		OpeningHours: input.OpeningHours,
		Settings:     input.Settings,
	}
}
