package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionUsecase builds the client-facing permission projection: a
// read-only snapshot of everything the user may see, served for conditional
// rendering. It is never an enforcement boundary; mutating operations always
// go back through the AuthorizationUsecase.
type PermissionUsecase interface {
	// GetUserPermissions assembles (or serves from cache) the user's
	// permission snapshot across all merchants.
	GetUserPermissions(ctx context.Context, userID uuid.UUID) (*entity.UserPermissions, error)

	// InvalidateUserPermissions drops the cached snapshot so the next read
	// reflects a membership mutation.
	InvalidateUserPermissions(ctx context.Context, userID uuid.UUID) error
}
