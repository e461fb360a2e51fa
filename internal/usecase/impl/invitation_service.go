package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"strings"
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

const (
	defaultInvitationTTL = 7 * 24 * time.Hour

	// invitationTokenBytes sizes the random token; 32 bytes of entropy make
	// tokens unguessable and collisions practically impossible.
	invitationTokenBytes = 32
)

// invitationService implements the InvitationUsecase interface.
type invitationService struct {
	txManager      repository.TransactionManager
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	authz          usecase.AuthorizationUsecase
	permissions    usecase.PermissionUsecase
	qrService      service.QRCodeService
	publisher      service.EventPublisher
	invitationTTL  time.Duration
	logger         *slog.Logger
}

// InvitationServiceParams holds dependencies for the invitation service, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InvitationRepo repository.InvitationRepository
	UserRepo       repository.UserRepository
	Authorization  usecase.AuthorizationUsecase
	Permissions    usecase.PermissionUsecase
	QRService      service.QRCodeService `optional:"true"`
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewInvitationService is the constructor for invitationService.
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	invitationTTL := defaultInvitationTTL
	if params.Config != nil && params.Config.Invitation != nil && params.Config.Invitation.TTL > 0 {
		invitationTTL = params.Config.Invitation.TTL
	}

	return &invitationService{
		txManager:      params.TxManager,
		invitationRepo: params.InvitationRepo,
		userRepo:       params.UserRepo,
		authz:          params.Authorization,
		permissions:    params.Permissions,
		qrService:      params.QRService,
		publisher:      params.Publisher,
		invitationTTL:  invitationTTL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInvitation issues a single-use, expiring invitation. Requires the
// admin role; inviting an owner requires the owner role.
func (srv *invitationService) CreateInvitation(ctx context.Context, actorID, merchantID uuid.UUID, input *usecase.CreateInvitationInput) (*entity.Invitation, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
	}
	if input.Role == entity.RoleOwner &&
		srv.authz.ResolveRole(ctx, actorID, merchantID) != entity.RoleOwner &&
		!srv.authz.IsPlatformAdmin(ctx, actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only an owner can invite another owner")
	}
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invitation email is required")
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation token")
	}

	invitation := &entity.Invitation{
		ID:             uuid.New(),
		MerchantID:     merchantID,
		Email:          strings.ToLower(input.Email),
		Role:           input.Role,
		LocationAccess: input.LocationAccess,
		InvitedBy:      actorID,
		Token:          token,
		ExpiresAt:      time.Now().Add(srv.invitationTTL),
	}
	if err := srv.invitationRepo.CreateInvitation(ctx, invitation); err != nil {
		return nil, errors.Wrap(err, "failed to create invitation")
	}

	publishAudit(ctx, srv.log(ctx), srv.publisher, "invitation.created", actorID, merchantID.String(), invitation.ID.String())
	srv.log(ctx).Info("Invitation created",
		slog.Any("merchant_id", merchantID),
		slog.Any("invitation_id", invitation.ID),
		slog.String("role", invitation.Role.String()))

	return invitation, nil
}

// ListInvitations returns the merchant's invitations, newest first.
// Requires the admin role.
func (srv *invitationService) ListInvitations(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Invitation, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	invitations, err := srv.invitationRepo.FindInvitationsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invitations")
	}

	return invitations, nil
}

// GetInvitationQR renders the invitation's acceptance link as a PNG QR code.
// Requires the admin role.
func (srv *invitationService) GetInvitationQR(ctx context.Context, actorID, merchantID, invitationID uuid.UUID) ([]byte, error) {
	if srv.qrService == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("QR code generation is not configured")
	}
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, domainerrors.ErrInvitationNotFound.WrapMessage("invitation not found")
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}
	if invitation.MerchantID != merchantID {
		return nil, domainerrors.ErrInvitationNotFound.WrapMessage("invitation not found")
	}
	if invitation.IsAccepted() {
		return nil, domainerrors.ErrInvitationAlreadyAccepted.WrapMessage("invitation already accepted")
	}
	if invitation.IsExpired(time.Now()) {
		return nil, domainerrors.ErrInvitationExpired.WrapMessage("invitation expired")
	}

	qrCode, err := srv.qrService.GenerateInvitationQR(invitation.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return qrCode, nil
}

// AcceptInvitation consumes a pending invitation and creates the membership,
// atomically. The accepting user's email must match the invitation.
func (srv *invitationService) AcceptInvitation(ctx context.Context, userID uuid.UUID, token string) (*entity.Membership, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepting user")
	}

	var createdMembership *entity.Membership
	var merchantID uuid.UUID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.InvitationRepo()
		membershipRepo := repoFactory.MembershipRepo()

		invitation, err := invitationRepo.FindInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrInvitationNotFound.WrapMessage("invitation not found")
			}

			return errors.Wrap(err, "failed to find invitation")
		}

		if invitation.IsAccepted() {
			return domainerrors.ErrInvitationAlreadyAccepted.WrapMessage("invitation already accepted")
		}
		now := time.Now()
		if invitation.IsExpired(now) {
			return domainerrors.ErrInvitationExpired.WrapMessage("invitation expired")
		}
		if !strings.EqualFold(invitation.Email, user.Email) {
			return domainerrors.ErrForbidden.WrapMessage("invitation was issued to a different email address")
		}

		membership := &entity.Membership{
			ID:             uuid.New(),
			MerchantID:     invitation.MerchantID,
			UserID:         userID,
			Role:           invitation.Role,
			LocationAccess: invitation.LocationAccess,
			IsActive:       true,
			InvitedBy:      &invitation.InvitedBy,
			InvitedAt:      invitation.CreatedAt,
			AcceptedAt:     &now,
		}
		if err := membershipRepo.CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, repository.ErrDuplicateMembership) {
				return domainerrors.ErrMembershipAlreadyExists.WrapMessage("already a member of this merchant")
			}

			return errors.WithStack(err)
		}

		invitation.AcceptedAt = &now
		if err := invitationRepo.UpdateInvitation(ctx, invitation); err != nil {
			return errors.Wrap(err, "failed to mark invitation accepted")
		}

		createdMembership = membership
		merchantID = invitation.MerchantID

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Invitation acceptance failed",
			slog.Any("user_id", userID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invitation acceptance transaction")
	}

	srv.authz.InvalidateMembership(ctx, userID, merchantID)
	if invErr := srv.permissions.InvalidateUserPermissions(ctx, userID); invErr != nil {
		srv.log(ctx).Warn("Failed to invalidate permission snapshot",
			slog.Any("user_id", userID),
			slog.Any("error", invErr))
	}

	publishAudit(ctx, srv.log(ctx), srv.publisher, "invitation.accepted", userID, merchantID.String(), createdMembership.ID.String())
	srv.log(ctx).Info("Invitation accepted",
		slog.Any("merchant_id", merchantID),
		slog.Any("user_id", userID),
		slog.String("role", createdMembership.Role.String()))

	return createdMembership, nil
}

// generateInvitationToken returns a URL-safe random token.
func generateInvitationToken() (string, error) {
	buf := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
