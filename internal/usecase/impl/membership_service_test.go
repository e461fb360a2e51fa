package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	mockrepo "horeca/internal/mocks/repository"
	mockservice "horeca/internal/mocks/service"
	mockusecase "horeca/internal/mocks/usecase"
	"horeca/internal/usecase"
)

type membershipMocks struct {
	membershipRepo *mockrepo.MockMembershipRepository
	authz          *mockusecase.MockAuthorizationUsecase
	permissions    *mockusecase.MockPermissionUsecase
	publisher      *mockservice.MockEventPublisher
}

func newMembershipService(t *testing.T) (usecase.MembershipUsecase, membershipMocks) {
	t.Helper()

	m := membershipMocks{
		membershipRepo: mockrepo.NewMockMembershipRepository(t),
		authz:          mockusecase.NewMockAuthorizationUsecase(t),
		permissions:    mockusecase.NewMockPermissionUsecase(t),
		publisher:      mockservice.NewMockEventPublisher(t),
	}

	svc := NewMembershipService(MembershipServiceParams{
		MembershipRepo: m.membershipRepo,
		Authorization:  m.authz,
		Permissions:    m.permissions,
		Publisher:      m.publisher,
		Logger:         slog.Default(),
	})

	return svc, m
}

func TestMembershipService_ListMembers(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.membershipRepo.EXPECT().FindMembershipsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Membership{
			{MerchantID: merchantID, Role: entity.RoleOwner, IsActive: true},
			{MerchantID: merchantID, Role: entity.RoleManager, IsActive: true},
		}, nil)

	members, err := svc.ListMembers(context.Background(), actorID, merchantID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMembershipService_ListMembers_ManagerForbidden(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).
		Return(domainerrors.ErrForbidden)

	_, err := svc.ListMembers(context.Background(), actorID, merchantID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMembershipService_UpdateMembership_ManagerLocationAccess(t *testing.T) {
	actorID := uuid.New()
	targetUser := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	locationID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     targetUser,
			Role:       entity.RoleManager,
			IsActive:   true,
		}, nil)
	m.membershipRepo.EXPECT().UpdateMembership(mock.Anything, mock.Anything).Return(nil)
	m.authz.EXPECT().InvalidateMembership(mock.Anything, targetUser, merchantID).Return()
	m.permissions.EXPECT().InvalidateUserPermissions(mock.Anything, targetUser).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	access := []uuid.UUID{locationID}
	updated, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		LocationAccess: &access,
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{locationID}, updated.LocationAccess)
	assert.Equal(t, entity.RoleManager, updated.Role)
}

func TestMembershipService_UpdateMembership_AdminCannotTouchOwner(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     uuid.New(),
			Role:       entity.RoleOwner,
			IsActive:   true,
		}, nil)

	role := entity.RoleManager
	_, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		Role: &role,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMembershipService_UpdateMembership_AdminCannotGrantOwner(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     uuid.New(),
			Role:       entity.RoleManager,
			IsActive:   true,
		}, nil)

	role := entity.RoleOwner
	_, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		Role: &role,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMembershipService_UpdateMembership_LastOwnerCannotBeDemoted(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleOwner)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     actorID,
			Role:       entity.RoleOwner,
			IsActive:   true,
		}, nil)
	m.membershipRepo.EXPECT().FindMembershipsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Membership{
			{ID: membershipID, MerchantID: merchantID, Role: entity.RoleOwner, IsActive: true},
			{ID: uuid.New(), MerchantID: merchantID, Role: entity.RoleAdmin, IsActive: true},
		}, nil)

	role := entity.RoleAdmin
	_, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		Role: &role,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestMembershipService_UpdateMembership_OwnerDemotedWithCoOwner(t *testing.T) {
	actorID := uuid.New()
	targetUser := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleOwner)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     targetUser,
			Role:       entity.RoleOwner,
			IsActive:   true,
		}, nil)
	m.membershipRepo.EXPECT().FindMembershipsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Membership{
			{ID: membershipID, MerchantID: merchantID, Role: entity.RoleOwner, IsActive: true},
			{ID: uuid.New(), MerchantID: merchantID, UserID: actorID, Role: entity.RoleOwner, IsActive: true},
		}, nil)
	m.membershipRepo.EXPECT().UpdateMembership(mock.Anything, mock.Anything).Return(nil)
	m.authz.EXPECT().InvalidateMembership(mock.Anything, targetUser, merchantID).Return()
	m.permissions.EXPECT().InvalidateUserPermissions(mock.Anything, targetUser).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	role := entity.RoleAdmin
	updated, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		Role: &role,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestMembershipService_UpdateMembership_WrongMerchant(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)

	// The membership exists but belongs to another merchant; it must read as
	// absent rather than leak across the tenant boundary.
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: uuid.New(),
			Role:       entity.RoleManager,
			IsActive:   true,
		}, nil)

	active := false
	_, err := svc.UpdateMembership(context.Background(), actorID, merchantID, membershipID, &usecase.UpdateMembershipInput{
		IsActive: &active,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMembershipNotFound))
}

func TestMembershipService_RemoveMembership(t *testing.T) {
	actorID := uuid.New()
	targetUser := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     targetUser,
			Role:       entity.RoleManager,
			IsActive:   true,
		}, nil)
	m.membershipRepo.EXPECT().DeleteMembership(mock.Anything, membershipID).Return(nil)
	m.authz.EXPECT().InvalidateMembership(mock.Anything, targetUser, merchantID).Return()
	m.permissions.EXPECT().InvalidateUserPermissions(mock.Anything, targetUser).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.RemoveMembership(context.Background(), actorID, merchantID, membershipID))
}

func TestMembershipService_RemoveMembership_LastOwner(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	membershipID := uuid.New()
	svc, m := newMembershipService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleOwner)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipByID(mock.Anything, membershipID).
		Return(&entity.Membership{
			ID:         membershipID,
			MerchantID: merchantID,
			UserID:     actorID,
			Role:       entity.RoleOwner,
			IsActive:   true,
		}, nil)
	m.membershipRepo.EXPECT().FindMembershipsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Membership{
			{ID: membershipID, MerchantID: merchantID, Role: entity.RoleOwner, IsActive: true},
			{ID: uuid.New(), MerchantID: merchantID, Role: entity.RoleOwner, IsActive: false},
		}, nil)

	// The only other owner membership is inactive, so removal must refuse.
	err := svc.RemoveMembership(context.Background(), actorID, merchantID, membershipID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestMembershipService_GetMyMemberships(t *testing.T) {
	userID := uuid.New()
	svc, m := newMembershipService(t)

	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return([]*entity.Membership{
			{UserID: userID, Role: entity.RoleOwner, IsActive: true},
		}, nil)

	memberships, err := svc.GetMyMemberships(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, memberships, 1)
}
