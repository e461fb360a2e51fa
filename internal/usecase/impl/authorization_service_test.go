package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horeca/config"
	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	"horeca/internal/domain/service"
	"horeca/internal/infra/cache"
	mockrepo "horeca/internal/mocks/repository"
	"horeca/internal/usecase"
)

type authzMocks struct {
	membershipRepo *mockrepo.MockMembershipRepository
	locationRepo   *mockrepo.MockLocationRepository
	personnelRepo  *mockrepo.MockPersonnelRepository
}

// newAuthzService wires the resolver against mocked repositories and the
// given substrate. The process-local admin tier is always a real bounded cache.
func newAuthzService(t *testing.T, permCache service.PermissionCache) (usecase.AuthorizationUsecase, authzMocks) {
	t.Helper()

	m := authzMocks{
		membershipRepo: mockrepo.NewMockMembershipRepository(t),
		locationRepo:   mockrepo.NewMockLocationRepository(t),
		personnelRepo:  mockrepo.NewMockPersonnelRepository(t),
	}

	svc := NewAuthorizationService(AuthorizationServiceParams{
		MembershipRepo: m.membershipRepo,
		LocationRepo:   m.locationRepo,
		PersonnelRepo:  m.personnelRepo,
		PermCache:      permCache,
		AdminCache:     cache.NewMemory[bool](100, time.Minute),
		Config:         &config.Config{},
		Logger:         slog.Default(),
	})

	return svc, m
}

// newSubstrate returns a Redis-backed permission cache on an in-process server.
func newSubstrate(t *testing.T) service.PermissionCache {
	t.Helper()

	mr := miniredis.RunT(t)
	substrate, err := cache.NewRedis(&config.RedisConfig{Addr: mr.Addr()}, slog.Default())
	require.NoError(t, err)

	return substrate
}

func notStaff(m authzMocks, userID uuid.UUID) {
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(nil, repository.ErrPersonnelNotFound).Maybe()
}

func TestAuthorizationService_ResolveRole(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	tests := []struct {
		name       string
		membership *entity.Membership
		err        error
		want       entity.MerchantRole
	}{
		{
			name: "active owner membership resolves owner",
			membership: &entity.Membership{
				UserID:     userID,
				MerchantID: merchantID,
				Role:       entity.RoleOwner,
				IsActive:   true,
			},
			want: entity.RoleOwner,
		},
		{
			name: "inactive membership resolves none",
			membership: &entity.Membership{
				UserID:     userID,
				MerchantID: merchantID,
				Role:       entity.RoleAdmin,
				IsActive:   false,
			},
			want: entity.RoleNone,
		},
		{
			name: "absent membership resolves none",
			err:  repository.ErrMembershipNotFound,
			want: entity.RoleNone,
		},
		{
			name: "repository failure resolves none",
			err:  errors.New("connection refused"),
			want: entity.RoleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthzService(t, cache.NewPassthrough())
			m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
				Return(tt.membership, tt.err)

			assert.Equal(t, tt.want, svc.ResolveRole(context.Background(), userID, merchantID))
		})
	}
}

func TestAuthorizationService_ResolveRole_CachesNegative(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	svc, m := newAuthzService(t, newSubstrate(t))
	m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
		Return(nil, repository.ErrMembershipNotFound).Once()

	ctx := context.Background()

	// The second resolution is served from the substrate: the mock's Once
	// would fail the test if the repository were consulted again.
	assert.Equal(t, entity.RoleNone, svc.ResolveRole(ctx, userID, merchantID))
	assert.Equal(t, entity.RoleNone, svc.ResolveRole(ctx, userID, merchantID))
}

func TestAuthorizationService_RequireRole_RoleOrder(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	tests := []struct {
		held  entity.MerchantRole
		min   entity.MerchantRole
		allow bool
	}{
		{entity.RoleOwner, entity.RoleOwner, true},
		{entity.RoleOwner, entity.RoleAdmin, true},
		{entity.RoleOwner, entity.RoleManager, true},
		{entity.RoleAdmin, entity.RoleOwner, false},
		{entity.RoleAdmin, entity.RoleAdmin, true},
		{entity.RoleAdmin, entity.RoleManager, true},
		{entity.RoleManager, entity.RoleOwner, false},
		{entity.RoleManager, entity.RoleAdmin, false},
		{entity.RoleManager, entity.RoleManager, true},
		{entity.RoleNone, entity.RoleManager, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.held)+"_requires_"+string(tt.min), func(t *testing.T) {
			svc, m := newAuthzService(t, cache.NewPassthrough())

			membership := &entity.Membership{
				UserID:     userID,
				MerchantID: merchantID,
				Role:       tt.held,
				IsActive:   true,
			}
			if tt.held == entity.RoleNone {
				m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
					Return(nil, repository.ErrMembershipNotFound)
			} else {
				m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
					Return(membership, nil)
			}
			notStaff(m, userID)

			err := svc.RequireRole(context.Background(), userID, merchantID, tt.min)
			if tt.allow {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			}
		})
	}
}

func TestAuthorizationService_RequireRole_PlatformAdminOverride(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
		Return(nil, repository.ErrMembershipNotFound)
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(&entity.PlatformPersonnel{
			UserID:   userID,
			Role:     entity.PersonnelRoleSuperAdmin,
			IsActive: true,
		}, nil)

	// No membership at all, yet the platform override grants owner-level access.
	assert.NoError(t, svc.RequireRole(context.Background(), userID, merchantID, entity.RoleOwner))
}

func TestAuthorizationService_CanAccessLocation(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	grantedLocation := uuid.New()
	otherLocation := uuid.New()

	tests := []struct {
		name       string
		locationID uuid.UUID
		role       entity.MerchantRole
		access     []uuid.UUID
		want       bool
	}{
		{
			name:       "owner reaches any location",
			locationID: otherLocation,
			role:       entity.RoleOwner,
			want:       true,
		},
		{
			name:       "admin reaches any location",
			locationID: otherLocation,
			role:       entity.RoleAdmin,
			want:       true,
		},
		{
			name:       "manager reaches a granted location",
			locationID: grantedLocation,
			role:       entity.RoleManager,
			access:     []uuid.UUID{grantedLocation},
			want:       true,
		},
		{
			name:       "manager is denied an ungranted location",
			locationID: otherLocation,
			role:       entity.RoleManager,
			access:     []uuid.UUID{grantedLocation},
			want:       false,
		},
		{
			name:       "manager with empty access set is denied",
			locationID: grantedLocation,
			role:       entity.RoleManager,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthzService(t, cache.NewPassthrough())
			notStaff(m, userID)
			m.locationRepo.EXPECT().FindLocationMerchant(mock.Anything, tt.locationID).
				Return(merchantID, nil)
			m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
				Return(&entity.Membership{
					UserID:         userID,
					MerchantID:     merchantID,
					Role:           tt.role,
					LocationAccess: tt.access,
					IsActive:       true,
				}, nil)

			assert.Equal(t, tt.want, svc.CanAccessLocation(context.Background(), userID, tt.locationID))
		})
	}
}

func TestAuthorizationService_CanAccessLocation_UnknownLocation(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	notStaff(m, userID)
	m.locationRepo.EXPECT().FindLocationMerchant(mock.Anything, locationID).
		Return(uuid.Nil, repository.ErrLocationNotFound)

	assert.False(t, svc.CanAccessLocation(context.Background(), userID, locationID))
}

func TestAuthorizationService_CanAccessLocation_PlatformAdmin(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(&entity.PlatformPersonnel{
			UserID:   userID,
			Role:     entity.PersonnelRoleSuperAdmin,
			IsActive: true,
		}, nil)

	// The override short-circuits before any location or membership lookup.
	assert.True(t, svc.CanAccessLocation(context.Background(), userID, locationID))
}

func TestAuthorizationService_IsPlatformAdmin_CachesVerdict(t *testing.T) {
	userID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(&entity.PlatformPersonnel{
			UserID:   userID,
			Role:     entity.PersonnelRoleSuperAdmin,
			IsActive: true,
		}, nil).Once()

	ctx := context.Background()

	assert.True(t, svc.IsPlatformAdmin(ctx, userID))
	assert.True(t, svc.IsPlatformAdmin(ctx, userID))
}

func TestAuthorizationService_IsPlatformAdmin_CachesNegative(t *testing.T) {
	userID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(nil, repository.ErrPersonnelNotFound).Once()

	ctx := context.Background()

	assert.False(t, svc.IsPlatformAdmin(ctx, userID))
	assert.False(t, svc.IsPlatformAdmin(ctx, userID))
}

func TestAuthorizationService_IsPlatformAdmin_SupportStaffIsNotAdmin(t *testing.T) {
	userID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(&entity.PlatformPersonnel{
			UserID:   userID,
			Role:     entity.PersonnelRoleSupport,
			IsActive: true,
		}, nil).Once()

	assert.False(t, svc.IsPlatformAdmin(context.Background(), userID))
}

func TestAuthorizationService_IsPlatformAdmin_TransientErrorNotCached(t *testing.T) {
	userID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(nil, errors.New("connection refused")).Twice()

	ctx := context.Background()

	// Both calls deny, and both reach the repository: a transient failure
	// must not pin a verdict past the outage.
	assert.False(t, svc.IsPlatformAdmin(ctx, userID))
	assert.False(t, svc.IsPlatformAdmin(ctx, userID))
}

func TestAuthorizationService_InvalidateMembership(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()

	svc, m := newAuthzService(t, newSubstrate(t))
	ctx := context.Background()

	m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
		Return(&entity.Membership{
			UserID:     userID,
			MerchantID: merchantID,
			Role:       entity.RoleManager,
			IsActive:   true,
		}, nil).Once()
	assert.Equal(t, entity.RoleManager, svc.ResolveRole(ctx, userID, merchantID))

	// After a role change the stale cached manager entry must not survive
	// invalidation.
	m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
		Return(&entity.Membership{
			UserID:     userID,
			MerchantID: merchantID,
			Role:       entity.RoleAdmin,
			IsActive:   true,
		}, nil).Once()
	svc.InvalidateMembership(ctx, userID, merchantID)
	assert.Equal(t, entity.RoleAdmin, svc.ResolveRole(ctx, userID, merchantID))
}

func TestAuthorizationService_InvalidatePlatformAdmin(t *testing.T) {
	userID := uuid.New()

	svc, m := newAuthzService(t, cache.NewPassthrough())
	ctx := context.Background()

	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(&entity.PlatformPersonnel{
			UserID:   userID,
			Role:     entity.PersonnelRoleSuperAdmin,
			IsActive: true,
		}, nil).Once()
	assert.True(t, svc.IsPlatformAdmin(ctx, userID))

	// Revocation drops the verdict immediately instead of waiting out the TTL.
	m.personnelRepo.EXPECT().FindPersonnelByUserID(mock.Anything, userID).
		Return(nil, repository.ErrPersonnelNotFound).Once()
	svc.InvalidatePlatformAdmin(ctx, userID)
	assert.False(t, svc.IsPlatformAdmin(ctx, userID))
}

func TestAuthorizationService_ResolveRole_LocationAccessSurvivesCache(t *testing.T) {
	userID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()

	svc, m := newAuthzService(t, newSubstrate(t))
	ctx := context.Background()

	notStaff(m, userID)
	m.locationRepo.EXPECT().FindLocationMerchant(mock.Anything, locationID).
		Return(merchantID, nil).Once()
	m.membershipRepo.EXPECT().FindMembership(mock.Anything, userID, merchantID).
		Return(&entity.Membership{
			UserID:         userID,
			MerchantID:     merchantID,
			Role:           entity.RoleManager,
			LocationAccess: []uuid.UUID{locationID},
			IsActive:       true,
		}, nil).Once()

	// Second check runs entirely from the substrate, access set included.
	assert.True(t, svc.CanAccessLocation(ctx, userID, locationID))
	assert.True(t, svc.CanAccessLocation(ctx, userID, locationID))
}
