package impl

import (
	"context"
	"fmt"
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

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	authz        usecase.AuthorizationUsecase
	storage      service.AssetStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for the location service, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo  repository.LocationRepository
	Authorization usecase.AuthorizationUsecase
	Storage       service.AssetStorage `optional:"true"`
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		authz:        params.Authorization,
		storage:      params.Storage,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocations returns the merchant's locations visible to the actor.
// Managers see only the locations in their access set.
func (srv *locationService) ListLocations(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Location, error) {
	role := srv.authz.ResolveRole(ctx, actorID, merchantID)
	if role == entity.RoleNone && !srv.authz.IsPlatformAdmin(ctx, actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a member of this merchant")
	}

	locations, err := srv.locationRepo.FindLocationsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	if role != entity.RoleManager {
		return locations, nil
	}

	visible := make([]*entity.Location, 0, len(locations))
	for _, location := range locations {
		if srv.authz.CanAccessLocation(ctx, actorID, location.ID) {
			visible = append(visible, location)
		}
	}

	return visible, nil
}

// GetLocation returns a single location the actor may operate on.
func (srv *locationService) GetLocation(ctx context.Context, actorID, locationID uuid.UUID) (*entity.Location, error) {
	if !srv.authz.CanAccessLocation(ctx, actorID, locationID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("no access to this location")
	}

	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage("location not found")
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

// AddLocation opens a new location. Requires the admin role.
func (srv *locationService) AddLocation(ctx context.Context, actorID, merchantID uuid.UUID, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid location status")
	}

	location := buildLocation(merchantID, input)
	if err := srv.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	publishAudit(ctx, srv.log(ctx), srv.publisher, "location.created", actorID, merchantID.String(), location.ID.String())
	srv.log(ctx).Info("Location created",
		slog.Any("merchant_id", merchantID),
		slog.Any("location_id", location.ID))

	return location, nil
}

// UpdateLocation applies the given changes. Managers may update locations in
// their access set; owners and admins may update any.
func (srv *locationService) UpdateLocation(ctx context.Context, actorID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	if !srv.authz.CanAccessLocation(ctx, actorID, locationID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("no access to this location")
	}

	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage("location not found")
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	if err := applyLocationUpdates(location, input); err != nil {
		return nil, err
	}

	if err := srv.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	publishAudit(ctx, srv.log(ctx), srv.publisher, "location.updated", actorID, location.MerchantID.String(), locationID.String())

	return location, nil
}

// DeleteLocation closes a location permanently. Requires the admin role.
func (srv *locationService) DeleteLocation(ctx context.Context, actorID, locationID uuid.UUID) error {
	merchantID, err := srv.locationRepo.FindLocationMerchant(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound.WrapMessage("location not found")
		}

		return errors.Wrap(err, "failed to resolve location merchant")
	}
	if err := srv.authz.RequireRole(ctx, actorID, merchantID, entity.RoleAdmin); err != nil {
		return err
	}

	if err := srv.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	srv.authz.InvalidateLocation(ctx, locationID)
	publishAudit(ctx, srv.log(ctx), srv.publisher, "location.deleted", actorID, merchantID.String(), locationID.String())
	srv.log(ctx).Info("Location deleted",
		slog.Any("merchant_id", merchantID),
		slog.Any("location_id", locationID))

	return nil
}

// UploadLocationAsset stores a logo or banner image and records its public
// URL on the location. Requires the admin role.
func (srv *locationService) UploadLocationAsset(ctx context.Context, actorID, locationID uuid.UUID, input *usecase.UploadAssetInput) (string, error) {
	if srv.storage == nil {
		return "", domainerrors.ErrInternalError.WrapMessage("asset storage is not configured")
	}
	if !input.Kind.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("invalid asset kind")
	}

	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return "", domainerrors.ErrLocationNotFound.WrapMessage("location not found")
		}

		return "", errors.Wrap(err, "failed to find location")
	}
	if err := srv.authz.RequireRole(ctx, actorID, location.MerchantID, entity.RoleAdmin); err != nil {
		return "", err
	}

	// Stable key per location and kind, so re-uploads overwrite in place.
	key := fmt.Sprintf("locations/%s/%s", locationID, input.Kind)
	url, err := srv.storage.Store(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to store asset")
	}

	switch input.Kind {
	case usecase.AssetKindLogo:
		location.LogoURL = url
	case usecase.AssetKindBanner:
		location.BannerURL = url
	}
	if err := srv.locationRepo.UpdateLocation(ctx, location); err != nil {
		return "", errors.Wrap(err, "failed to record asset URL")
	}

	publishAudit(ctx, srv.log(ctx), srv.publisher, "location.asset_uploaded", actorID, location.MerchantID.String(), locationID.String())

	return url, nil
}

func applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) error {
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.PostalCode != nil {
		location.PostalCode = *input.PostalCode
	}
	if input.City != nil {
		location.City = *input.City
	}
	if input.Latitude != nil {
		location.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		location.Longitude = input.Longitude
	}
	if input.Phone != nil {
		location.Phone = *input.Phone
	}
	if input.Email != nil {
		location.Email = *input.Email
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid location status")
		}
		location.Status = *input.Status
	}
	if input.OpeningHours != nil {
		location.OpeningHours = input.OpeningHours
	}
	if input.Settings != nil {
		location.Settings = input.Settings
	}

	return nil
}
