package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horeca/config"
	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	mockservice "horeca/internal/mocks/service"
	mockusecase "horeca/internal/mocks/usecase"
	"horeca/internal/usecase"
)

type invitationMocks struct {
	factory     *stubRepoFactory
	authz       *mockusecase.MockAuthorizationUsecase
	permissions *mockusecase.MockPermissionUsecase
	qrService   *mockservice.MockQRCodeService
	publisher   *mockservice.MockEventPublisher
}

func newInvitationService(t *testing.T) (usecase.InvitationUsecase, invitationMocks) {
	t.Helper()

	m := invitationMocks{
		factory:     newStubRepoFactory(t),
		authz:       mockusecase.NewMockAuthorizationUsecase(t),
		permissions: mockusecase.NewMockPermissionUsecase(t),
		qrService:   mockservice.NewMockQRCodeService(t),
		publisher:   mockservice.NewMockEventPublisher(t),
	}

	svc := NewInvitationService(InvitationServiceParams{
		TxManager:      &stubTxManager{factory: m.factory},
		InvitationRepo: m.factory.invitationRepo,
		UserRepo:       m.factory.userRepo,
		Authorization:  m.authz,
		Permissions:    m.permissions,
		QRService:      m.qrService,
		Publisher:      m.publisher,
		Config:         &config.Config{},
		Logger:         slog.Default(),
	})

	return svc, m
}

func TestInvitationService_CreateInvitation(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.factory.invitationRepo.EXPECT().CreateInvitation(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	before := time.Now()
	invitation, err := svc.CreateInvitation(context.Background(), actorID, merchantID, &usecase.CreateInvitationInput{
		Email:          "Piet@Example.BE",
		Role:           entity.RoleManager,
		LocationAccess: []uuid.UUID{locationID},
	})
	require.NoError(t, err)

	// The email is normalized so acceptance matching is case-insensitive.
	assert.Equal(t, "piet@example.be", invitation.Email)
	assert.Equal(t, entity.RoleManager, invitation.Role)
	assert.Equal(t, []uuid.UUID{locationID}, invitation.LocationAccess)
	assert.Equal(t, actorID, invitation.InvitedBy)
	assert.NotEmpty(t, invitation.Token)

	// Default TTL is one week.
	assert.WithinDuration(t, before.Add(7*24*time.Hour), invitation.ExpiresAt, time.Minute)
}

func TestInvitationService_CreateInvitation_TokensAreUnique(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil).Twice()
	m.factory.invitationRepo.EXPECT().CreateInvitation(mock.Anything, mock.Anything).Return(nil).Twice()
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := svc.CreateInvitation(context.Background(), actorID, merchantID, &usecase.CreateInvitationInput{
		Email: "a@example.be",
		Role:  entity.RoleManager,
	})
	require.NoError(t, err)
	second, err := svc.CreateInvitation(context.Background(), actorID, merchantID, &usecase.CreateInvitationInput{
		Email: "b@example.be",
		Role:  entity.RoleManager,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestInvitationService_CreateInvitation_AdminCannotInviteOwner(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)

	_, err := svc.CreateInvitation(context.Background(), actorID, merchantID, &usecase.CreateInvitationInput{
		Email: "piet@example.be",
		Role:  entity.RoleOwner,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInvitationService_CreateInvitation_RequiresEmail(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)

	_, err := svc.CreateInvitation(context.Background(), actorID, merchantID, &usecase.CreateInvitationInput{
		Role: entity.RoleManager,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvitationService_GetInvitationQR(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	invitationID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByID(mock.Anything, invitationID).
		Return(&entity.Invitation{
			ID:         invitationID,
			MerchantID: merchantID,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil)
	m.qrService.EXPECT().GenerateInvitationQR("invite-token").Return([]byte("png-bytes"), nil)

	qr, err := svc.GetInvitationQR(context.Background(), actorID, merchantID, invitationID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestInvitationService_GetInvitationQR_Expired(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	invitationID := uuid.New()
	svc, m := newInvitationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByID(mock.Anything, invitationID).
		Return(&entity.Invitation{
			ID:         invitationID,
			MerchantID: merchantID,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(-time.Hour),
		}, nil)

	_, err := svc.GetInvitationQR(context.Background(), actorID, merchantID, invitationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationExpired))
}

func TestInvitationService_AcceptInvitation(t *testing.T) {
	userID := uuid.New()
	inviterID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "Piet@Example.BE", IsActive: true}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "invite-token").
		Return(&entity.Invitation{
			ID:             uuid.New(),
			MerchantID:     merchantID,
			Email:          "piet@example.be",
			Role:           entity.RoleManager,
			LocationAccess: []uuid.UUID{locationID},
			InvitedBy:      inviterID,
			Token:          "invite-token",
			ExpiresAt:      time.Now().Add(time.Hour),
		}, nil)

	var created *entity.Membership
	m.factory.membershipRepo.EXPECT().CreateMembership(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Membership)
		}).Return(nil)

	var marked *entity.Invitation
	m.factory.invitationRepo.EXPECT().UpdateInvitation(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			marked = args.Get(1).(*entity.Invitation)
		}).Return(nil)
	m.authz.EXPECT().InvalidateMembership(mock.Anything, userID, merchantID).Return()
	m.permissions.EXPECT().InvalidateUserPermissions(mock.Anything, userID).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	membership, err := svc.AcceptInvitation(context.Background(), userID, "invite-token")
	require.NoError(t, err)

	assert.Equal(t, merchantID, membership.MerchantID)
	assert.Equal(t, entity.RoleManager, membership.Role)
	assert.Equal(t, []uuid.UUID{locationID}, membership.LocationAccess)
	assert.True(t, membership.IsActive)
	require.NotNil(t, membership.InvitedBy)
	assert.Equal(t, inviterID, *membership.InvitedBy)
	assert.NotNil(t, membership.AcceptedAt)

	require.NotNil(t, created)
	require.NotNil(t, marked)
	assert.NotNil(t, marked.AcceptedAt)
}

func TestInvitationService_AcceptInvitation_EmailMismatch(t *testing.T) {
	userID := uuid.New()
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "iemand.anders@example.be"}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "invite-token").
		Return(&entity.Invitation{
			MerchantID: uuid.New(),
			Email:      "piet@example.be",
			Role:       entity.RoleManager,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil)

	_, err := svc.AcceptInvitation(context.Background(), userID, "invite-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInvitationService_AcceptInvitation_Expired(t *testing.T) {
	userID := uuid.New()
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "piet@example.be"}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "invite-token").
		Return(&entity.Invitation{
			MerchantID: uuid.New(),
			Email:      "piet@example.be",
			Role:       entity.RoleManager,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(-time.Hour),
		}, nil)

	_, err := svc.AcceptInvitation(context.Background(), userID, "invite-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationExpired))
}

func TestInvitationService_AcceptInvitation_AlreadyAccepted(t *testing.T) {
	userID := uuid.New()
	acceptedAt := time.Now().Add(-time.Hour)
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "piet@example.be"}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "invite-token").
		Return(&entity.Invitation{
			MerchantID: uuid.New(),
			Email:      "piet@example.be",
			Role:       entity.RoleManager,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(time.Hour),
			AcceptedAt: &acceptedAt,
		}, nil)

	_, err := svc.AcceptInvitation(context.Background(), userID, "invite-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationAlreadyAccepted))
}

func TestInvitationService_AcceptInvitation_AlreadyMember(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "piet@example.be"}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "invite-token").
		Return(&entity.Invitation{
			MerchantID: merchantID,
			Email:      "piet@example.be",
			Role:       entity.RoleManager,
			Token:      "invite-token",
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil)
	m.factory.membershipRepo.EXPECT().CreateMembership(mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateMembership)

	_, err := svc.AcceptInvitation(context.Background(), userID, "invite-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMembershipAlreadyExists))
}

func TestInvitationService_AcceptInvitation_UnknownToken(t *testing.T) {
	userID := uuid.New()
	svc, m := newInvitationService(t)

	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "piet@example.be"}, nil)
	m.factory.invitationRepo.EXPECT().FindInvitationByToken(mock.Anything, "verzonnen").
		Return(nil, repository.ErrInvitationNotFound)

	_, err := svc.AcceptInvitation(context.Background(), userID, "verzonnen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotFound))
}
