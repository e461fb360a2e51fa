package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMerchantInput defines the data required to create a merchant tenant.
// Every merchant starts with one location, created in the same transaction.
type CreateMerchantInput struct {
	Name         string
	LegalName    string
	KBONumber    string
	ContactEmail string
	Phone        string
	Address      string
	BusinessType entity.BusinessType
	Timezone     string
	Currency     string

	// FirstLocation is the merchant's initial venue. A merchant is never
	// created without at least one location.
	FirstLocation CreateLocationInput
}

// UpdateMerchantInput defines the mutable merchant fields. Nil means unchanged.
type UpdateMerchantInput struct {
	Name         *string
	LegalName    *string
	KBONumber    *string
	ContactEmail *string
	Phone        *string
	Address      *string
	BusinessType *entity.BusinessType

	// Status transitions are reserved for platform administrators.
	Status *entity.MerchantStatus

	Timezone *string
	Currency *string
}

// MerchantUsecase defines the interface for merchant tenant management.
// Every operation authorizes the acting user before touching data.
type MerchantUsecase interface {
	// CreateMerchant creates a merchant, its first location and an owner
	// membership for the actor, atomically.
	CreateMerchant(ctx context.Context, actorID uuid.UUID, input *CreateMerchantInput) (*entity.Merchant, error)

	// GetMerchant returns a merchant the actor is a member of.
	GetMerchant(ctx context.Context, actorID, merchantID uuid.UUID) (*entity.Merchant, error)

	// ListMerchants pages through all merchants. Platform administrators only.
	ListMerchants(ctx context.Context, actorID uuid.UUID, offset, limit int) ([]*entity.Merchant, error)

	// SearchMerchants matches merchants by name or legal name.
	// Platform administrators only.
	SearchMerchants(ctx context.Context, actorID uuid.UUID, query string, limit int) ([]*entity.Merchant, error)

	// UpdateMerchant applies the given changes. Requires the admin role;
	// status transitions additionally require the platform-admin override.
	UpdateMerchant(ctx context.Context, actorID, merchantID uuid.UUID, input *UpdateMerchantInput) (*entity.Merchant, error)

	// DeleteMerchant removes the merchant and, by cascade, its locations and
	// memberships. Requires the owner role or the platform-admin override.
	DeleteMerchant(ctx context.Context, actorID, merchantID uuid.UUID) error
}
