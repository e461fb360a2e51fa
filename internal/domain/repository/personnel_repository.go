package repository

import (
	"context"

	"horeca/internal/domain/entity"
	"horeca/internal/errors"

	"github.com/google/uuid"
)

// ErrPersonnelNotFound is returned when a user has no platform personnel row.
// A missing row simply means the user is not platform staff.
var ErrPersonnelNotFound = errors.New("platform personnel not found")

// PersonnelRepository defines the interface for platform staff persistence.
type PersonnelRepository interface {
	// FindPersonnelByUserID retrieves the personnel row for a user.
	FindPersonnelByUserID(ctx context.Context, userID uuid.UUID) (*entity.PlatformPersonnel, error)

	// CreatePersonnel persists a new platform personnel row.
	CreatePersonnel(ctx context.Context, personnel *entity.PlatformPersonnel) error

	// UpdatePersonnel modifies an existing personnel row (role, department, active flag).
	UpdatePersonnel(ctx context.Context, personnel *entity.PlatformPersonnel) error
}
