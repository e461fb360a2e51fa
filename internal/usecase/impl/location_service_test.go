package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
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

type locationMocks struct {
	locationRepo *mockrepo.MockLocationRepository
	authz        *mockusecase.MockAuthorizationUsecase
	storage      *mockservice.MockAssetStorage
	publisher    *mockservice.MockEventPublisher
}

func newLocationService(t *testing.T) (usecase.LocationUsecase, locationMocks) {
	t.Helper()

	m := locationMocks{
		locationRepo: mockrepo.NewMockLocationRepository(t),
		authz:        mockusecase.NewMockAuthorizationUsecase(t),
		storage:      mockservice.NewMockAssetStorage(t),
		publisher:    mockservice.NewMockEventPublisher(t),
	}

	svc := NewLocationService(LocationServiceParams{
		LocationRepo:  m.locationRepo,
		Authorization: m.authz,
		Storage:       m.storage,
		Publisher:     m.publisher,
		Logger:        slog.Default(),
	})

	return svc, m
}

func TestLocationService_ListLocations_AdminSeesAll(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleAdmin)
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Location{
			{ID: uuid.New(), MerchantID: merchantID, Name: "Gent Centrum"},
			{ID: uuid.New(), MerchantID: merchantID, Name: "Brugge Markt"},
		}, nil)

	locations, err := svc.ListLocations(context.Background(), actorID, merchantID)
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestLocationService_ListLocations_ManagerSeesAccessSet(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	granted := uuid.New()
	other := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleManager)
	m.locationRepo.EXPECT().FindLocationsByMerchant(mock.Anything, merchantID).
		Return([]*entity.Location{
			{ID: granted, MerchantID: merchantID, Name: "Gent Centrum"},
			{ID: other, MerchantID: merchantID, Name: "Brugge Markt"},
		}, nil)
	m.authz.EXPECT().CanAccessLocation(mock.Anything, actorID, granted).Return(true)
	m.authz.EXPECT().CanAccessLocation(mock.Anything, actorID, other).Return(false)

	locations, err := svc.ListLocations(context.Background(), actorID, merchantID)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, granted, locations[0].ID)
}

func TestLocationService_ListLocations_NonMember(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().ResolveRole(mock.Anything, actorID, merchantID).Return(entity.RoleNone)
	m.authz.EXPECT().IsPlatformAdmin(mock.Anything, actorID).Return(false)

	_, err := svc.ListLocations(context.Background(), actorID, merchantID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLocationService_GetLocation(t *testing.T) {
	actorID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().CanAccessLocation(mock.Anything, actorID, locationID).Return(true)
	m.locationRepo.EXPECT().FindLocationByID(mock.Anything, locationID).
		Return(&entity.Location{ID: locationID, Name: "Gent Centrum"}, nil)

	location, err := svc.GetLocation(context.Background(), actorID, locationID)
	require.NoError(t, err)
	assert.Equal(t, "Gent Centrum", location.Name)
}

func TestLocationService_GetLocation_Forbidden(t *testing.T) {
	actorID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().CanAccessLocation(mock.Anything, actorID, locationID).Return(false)

	_, err := svc.GetLocation(context.Background(), actorID, locationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLocationService_AddLocation(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.locationRepo.EXPECT().CreateLocation(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	location, err := svc.AddLocation(context.Background(), actorID, merchantID, &usecase.CreateLocationInput{
		Name:       "Leuven Oude Markt",
		PostalCode: "3000",
		City:       "Leuven",
	})
	require.NoError(t, err)

	assert.Equal(t, merchantID, location.MerchantID)
	assert.Equal(t, entity.LocationStatusComingSoon, location.Status)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestLocationService_AddLocation_InvalidStatus(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)

	_, err := svc.AddLocation(context.Background(), actorID, merchantID, &usecase.CreateLocationInput{
		Name:   "Leuven Oude Markt",
		Status: entity.LocationStatus("gesloten wegens verlof"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_UpdateLocation(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	m.authz.EXPECT().CanAccessLocation(mock.Anything, actorID, locationID).Return(true)
	m.locationRepo.EXPECT().FindLocationByID(mock.Anything, locationID).
		Return(&entity.Location{ID: locationID, MerchantID: merchantID, Name: "Oude Naam", City: "Gent"}, nil)
	m.locationRepo.EXPECT().UpdateLocation(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	newName := "Nieuwe Naam"
	location, err := svc.UpdateLocation(context.Background(), actorID, locationID, &usecase.UpdateLocationInput{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Nieuwe Naam", location.Name)
	assert.Equal(t, "Gent", location.City)
}

func TestLocationService_DeleteLocation(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	m.locationRepo.EXPECT().FindLocationMerchant(mock.Anything, locationID).Return(merchantID, nil)
	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.locationRepo.EXPECT().DeleteLocation(mock.Anything, locationID).Return(nil)
	m.authz.EXPECT().InvalidateLocation(mock.Anything, locationID).Return()
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.DeleteLocation(context.Background(), actorID, locationID))
}

func TestLocationService_DeleteLocation_ManagerForbidden(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	m.locationRepo.EXPECT().FindLocationMerchant(mock.Anything, locationID).Return(merchantID, nil)
	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).
		Return(domainerrors.ErrForbidden)

	err := svc.DeleteLocation(context.Background(), actorID, locationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLocationService_UploadLocationAsset(t *testing.T) {
	actorID := uuid.New()
	merchantID := uuid.New()
	locationID := uuid.New()
	svc, m := newLocationService(t)

	body := strings.NewReader("png-bytes")
	wantKey := "locations/" + locationID.String() + "/logo"

	m.locationRepo.EXPECT().FindLocationByID(mock.Anything, locationID).
		Return(&entity.Location{ID: locationID, MerchantID: merchantID}, nil)
	m.authz.EXPECT().RequireRole(mock.Anything, actorID, merchantID, entity.RoleAdmin).Return(nil)
	m.storage.EXPECT().Store(mock.Anything, wantKey, "image/png", body).
		Return("https://assets.example.be/"+wantKey, nil)

	var updated *entity.Location
	m.locationRepo.EXPECT().UpdateLocation(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Location)
		}).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	url, err := svc.UploadLocationAsset(context.Background(), actorID, locationID, &usecase.UploadAssetInput{
		Kind:        usecase.AssetKindLogo,
		ContentType: "image/png",
		Body:        body,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://assets.example.be/"+wantKey, url)
	require.NotNil(t, updated)
	assert.Equal(t, url, updated.LogoURL)
	assert.Empty(t, updated.BannerURL)
}

func TestLocationService_UploadLocationAsset_InvalidKind(t *testing.T) {
	svc, _ := newLocationService(t)

	_, err := svc.UploadLocationAsset(context.Background(), uuid.New(), uuid.New(), &usecase.UploadAssetInput{
		Kind: usecase.AssetKind("avatar"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_UploadLocationAsset_NotConfigured(t *testing.T) {
	svc := NewLocationService(LocationServiceParams{
		LocationRepo:  mockrepo.NewMockLocationRepository(t),
		Authorization: mockusecase.NewMockAuthorizationUsecase(t),
		Publisher:     mockservice.NewMockEventPublisher(t),
		Logger:        slog.Default(),
	})

	_, err := svc.UploadLocationAsset(context.Background(), uuid.New(), uuid.New(), &usecase.UploadAssetInput{
		Kind: usecase.AssetKindLogo,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
