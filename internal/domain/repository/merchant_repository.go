package repository

import (
	"context"

	"horeca/internal/domain/entity"
	"horeca/internal/errors"

	"github.com/google/uuid"
)

// ErrMerchantNotFound is returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines the interface for merchant tenant persistence.
type MerchantRepository interface {
	// CreateMerchant persists a new merchant tenant.
	CreateMerchant(ctx context.Context, merchant *entity.Merchant) error

	// FindMerchantByID retrieves a merchant by its unique ID.
	FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// ListMerchants retrieves merchants ordered by creation time, newest first.
	ListMerchants(ctx context.Context, offset, limit int) ([]*entity.Merchant, error)

	// SearchMerchants retrieves merchants whose name or legal name matches the query.
	SearchMerchants(ctx context.Context, query string, limit int) ([]*entity.Merchant, error)

	// UpdateMerchant modifies an existing merchant.
	UpdateMerchant(ctx context.Context, merchant *entity.Merchant) error

	// DeleteMerchant removes a merchant; locations and memberships cascade.
	DeleteMerchant(ctx context.Context, id uuid.UUID) error
}
