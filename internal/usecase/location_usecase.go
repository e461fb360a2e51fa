package usecase

import (
	"context"
	"io"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput defines the data required to open a new location.
type CreateLocationInput struct {
	Name         string
	Address      string
	PostalCode   string
	City         string
	Latitude     *float64
	Longitude    *float64
	Phone        string
	Email        string
	Status       entity.LocationStatus
	OpeningHours map[string]string
	Settings     *entity.LocationSettings
}

// UpdateLocationInput defines the mutable location fields. Nil means unchanged.
type UpdateLocationInput struct {
	Name         *string
	Address      *string
	PostalCode   *string
	City         *string
	Latitude     *float64
	Longitude    *float64
	Phone        *string
	Email        *string
	Status       *entity.LocationStatus
	OpeningHours map[string]string
	Settings     *entity.LocationSettings
}

// AssetKind identifies which visual asset of a location is being replaced.
type AssetKind string

const (
	// AssetKindLogo is the location's logo image.
	AssetKindLogo AssetKind = "logo"
	// AssetKindBanner is the location's banner image.
	AssetKindBanner AssetKind = "banner"
)

// IsValid checks if the AssetKind is a valid value.
func (k AssetKind) IsValid() bool {
	switch k {
	case AssetKindLogo, AssetKindBanner:
		return true
	default:
		return false
	}
}

// UploadAssetInput carries an asset upload for a location.
type UploadAssetInput struct {
	Kind        AssetKind
	ContentType string
	Body        io.Reader
}

// LocationUsecase defines the interface for location management.
//
// Access is role-gated per operation: owners and admins manage the full
// location lifecycle, managers operate only the locations in their access set.
type LocationUsecase interface {
	// ListLocations returns the merchant's locations visible to the actor.
	// Managers see only the locations in their access set.
	ListLocations(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Location, error)

	// GetLocation returns a single location the actor may operate on.
	GetLocation(ctx context.Context, actorID, locationID uuid.UUID) (*entity.Location, error)

	// AddLocation opens a new location. Requires the admin role.
	AddLocation(ctx context.Context, actorID, merchantID uuid.UUID, input *CreateLocationInput) (*entity.Location, error)

	// UpdateLocation applies the given changes. Managers may update locations
	// in their access set; owners and admins may update any.
	UpdateLocation(ctx context.Context, actorID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// DeleteLocation closes a location permanently. Requires the admin role.
	DeleteLocation(ctx context.Context, actorID, locationID uuid.UUID) error

	// UploadLocationAsset stores a logo or banner image and records its
	// public URL on the location. Requires the admin role.
	UploadLocationAsset(ctx context.Context, actorID, locationID uuid.UUID, input *UploadAssetInput) (string, error)
}
