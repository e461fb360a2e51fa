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
	"horeca/internal/domain/service"
	"horeca/internal/infra/cache"
	mockrepo "horeca/internal/mocks/repository"
	mockusecase "horeca/internal/mocks/usecase"
	"horeca/internal/usecase"
)

type permissionMocks struct {
	membershipRepo *mockrepo.MockMembershipRepository
	merchantRepo   *mockrepo.MockMerchantRepository
	locationRepo   *mockrepo.MockLocationRepository
	authz          *mockusecase.MockAuthorizationUsecase
}

func newPermissionService(t *testing.T, permCache service.PermissionCache) (usecase.PermissionUsecase, permissionMocks) {
	t.Helper()

	m := permissionMocks{
		membershipRepo: mockrepo.NewMockMembershipRepository(t),
		merchantRepo:   mockrepo.NewMockMerchantRepository(t),
		locationRepo:   mockrepo.NewMockLocationRepository(t),
		authz:          mockusecase.NewMockAuthorizationUsecase(t),
	}

	svc := NewPermissionService(PermissionServiceParams{
		MembershipRepo: m.membershipRepo,
		MerchantRepo:   m.merchantRepo,
		LocationRepo:   m.locationRepo,
		Authorization:  m.authz,
		PermCache:      permCache,
		Config:         &config.Config{},
		Logger:         slog.Default(),
	})

	return svc, m
}

func TestPermissionService_GetUserPermissions_ManagerProjection(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	grantedLocation := uuid.New()
	otherLocation := uuid.New()

	svc, m := newPermissionService(t, cache.NewPassthrough())
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return([]*entity.Membership{
			{
				UserID:         userID,
				MerchantID:     merchantID,
				Role:           entity.RoleManager,
				LocationAccess: []uuid.UUID{grantedLocation},
				IsActive:       true,
			},
		}, nil)
	m.merchantRepo.EXPECT().FindMerchantByID(mock.Anything, merchantID).
		Return(&entity.Merchant{
			ID:           merchantID,
			Name:         "Frituur 't Hoekske",
			LegalName:    "Frituur 't Hoekske BV",
			BusinessType: entity.BusinessTypeRestaurant,
			Status:       entity.MerchantStatusActive,
		}, nil)
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Location{
			{ID: grantedLocation, MerchantID: merchantID, Name: "Gent Centrum"},
			{ID: otherLocation, MerchantID: merchantID, Name: "Brugge Markt"},
		}, nil)

	permissions, err := svc.GetUserPermissions(context.Background(), userID)
	require.NoError(t, err)

	assert.False(t, permissions.PlatformAdmin)
	assert.Equal(t, userID, permissions.UserID)
	assert.Equal(t, 1, permissions.TotalMerchants)
	require.Len(t, permissions.MerchantMemberships, 1)

	entry := permissions.MerchantMemberships[0]
	assert.Equal(t, entity.RoleManager, entry.Role)
	assert.Equal(t, "Frituur 't Hoekske", entry.MerchantName)
	assert.Equal(t, 2, entry.AllLocationsCount)

	// A manager's projection only carries the granted locations.
	assert.Equal(t, 1, entry.AccessibleLocationsCount)
	require.Len(t, entry.AccessibleLocations, 1)
	assert.Equal(t, grantedLocation, entry.AccessibleLocations[0].ID)
	assert.Equal(t, "Gent Centrum", entry.AccessibleLocations[0].Name)
}

func TestPermissionService_GetUserPermissions_OwnerSeesAllLocations(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	svc, m := newPermissionService(t, cache.NewPassthrough())
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return([]*entity.Membership{
			{UserID: userID, MerchantID: merchantID, Role: entity.RoleOwner, IsActive: true},
		}, nil)
	m.merchantRepo.EXPECT().FindMerchantByID(mock.Anything, merchantID).
		Return(&entity.Merchant{ID: merchantID, Name: "Bar Belge"}, nil)
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Location{
			{ID: uuid.New(), MerchantID: merchantID, Name: "Antwerpen Zuid"},
			{ID: uuid.New(), MerchantID: merchantID, Name: "Leuven Oude Markt"},
		}, nil)

	permissions, err := svc.GetUserPermissions(context.Background(), userID)
	require.NoError(t, err)

	entry := permissions.MerchantMemberships[0]
	assert.Equal(t, 2, entry.AccessibleLocationsCount)
	assert.Equal(t, 2, entry.AllLocationsCount)
}

func TestPermissionService_GetUserPermissions_SkipsInactiveMemberships(t *testing.T) {
	userID := uuid.New()
	activeMerchant := uuid.New()
	inactiveMerchant := uuid.New()

	svc, m := newPermissionService(t, cache.NewPassthrough())
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return([]*entity.Membership{
			{UserID: userID, MerchantID: activeMerchant, Role: entity.RoleAdmin, IsActive: true},
			{UserID: userID, MerchantID: inactiveMerchant, Role: entity.RoleOwner, IsActive: false},
		}, nil)
	m.merchantRepo.EXPECT().FindMerchantByID(mock.Anything, activeMerchant).
		Return(&entity.Merchant{ID: activeMerchant, Name: "De Koffiehoek"}, nil)
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, activeMerchant).
		Return(nil, nil)

	permissions, err := svc.GetUserPermissions(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, permissions.TotalMerchants)
	require.Len(t, permissions.MerchantMemberships, 1)
	assert.Equal(t, activeMerchant, permissions.MerchantMemberships[0].MerchantID)
}

func TestPermissionService_GetUserPermissions_NoMemberships(t *testing.T) {
	userID := uuid.New()

	svc, m := newPermissionService(t, cache.NewPassthrough())
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return(nil, nil)

	permissions, err := svc.GetUserPermissions(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 0, permissions.TotalMerchants)
	assert.Empty(t, permissions.MerchantMemberships)
}

func TestPermissionService_GetUserPermissions_RepositoryError(t *testing.T) {
	userID := uuid.New()

	svc, m := newPermissionService(t, cache.NewPassthrough())
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false)
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return(nil, errors.New("connection refused"))

	permissions, err := svc.GetUserPermissions(context.Background(), userID)
	assert.Error(t, err)
	assert.Nil(t, permissions)
}

func TestPermissionService_SnapshotCachedAndInvalidated(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	svc, m := newPermissionService(t, newSubstrate(t))
	ctx := context.Background()

	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, userID).Return(false).Twice()
	m.membershipRepo.EXPECT().FindMembershipsByUser(mock.Anything, userID).
		Return([]*entity.Membership{
			{UserID: userID, MerchantID: merchantID, Role: entity.RoleAdmin, IsActive: true},
		}, nil).Twice()
	m.merchantRepo.EXPECT().FindMerchantByID(mock.Anything, merchantID).
		Return(&entity.Merchant{ID: merchantID, Name: "Brasserie Centraal"}, nil).Twice()
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, merchantID).
		Return(nil, nil).Twice()

	// First read computes, second is served from the substrate: the Twice
	// expectations only allow one rebuild after the explicit invalidation.
	first, err := svc.GetUserPermissions(ctx, userID)
	require.NoError(t, err)
	second, err := svc.GetUserPermissions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, svc.InvalidateUserPermissions(ctx, userID))

	_, err = svc.GetUserPermissions(ctx, userID)
	require.NoError(t, err)
}

func TestPermissionService_ProfileTTLFromConfig(t *testing.T) {
	svc := NewPermissionService(PermissionServiceParams{
		PermCache: cache.NewPassthrough(),
		Config: &config.Config{
			PermissionCache: &config.PermissionCacheConfig{ProfileTTL: time.Minute},
		},
		Logger: slog.Default(),
	})

	impl, ok := svc.(*permissionService)
	require.True(t, ok)
	assert.Equal(t, time.Minute, impl.profileTTL)
}
