package repository

import (
	"context"

	"horeca/internal/domain/entity"
	"horeca/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for merchant location persistence.
type LocationRepository interface {
	// CreateLocation persists a new location for a merchant.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationMerchant resolves the owning merchant of a location.
	// Returns ErrLocationNotFound when the location does not exist.
	FindLocationMerchant(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error)

	// FindLocationsByMerchant retrieves all locations belonging to a merchant.
	FindLocationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Location, error)

	// CountLocationsByMerchant returns the number of locations a merchant has.
	CountLocationsByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)

	// UpdateLocation modifies an existing location.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// DeleteLocation removes a location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
