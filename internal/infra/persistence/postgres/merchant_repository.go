package postgres

import (
	"context"

	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	"horeca/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{db: db}
}

// CreateMerchant persists a new merchant tenant.
func (repo *merchantRepository) CreateMerchant(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMerchantCreationFailed.WrapMessage("missing required merchant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	// Update the entity with generated values
	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

// FindMerchantByID retrieves a merchant by its unique ID.
func (repo *merchantRepository) FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by id")
	}

	return toMerchantDomain(&merchantM), nil
}

// ListMerchants retrieves merchants ordered by creation time, newest first.
func (repo *merchantRepository) ListMerchants(ctx context.Context, offset, limit int) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, nil
}

// SearchMerchants retrieves merchants whose name or legal name matches the query.
func (repo *merchantRepository) SearchMerchants(ctx context.Context, query string, limit int) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	pattern := "%" + query + "%"
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR legal_name ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, nil
}

// UpdateMerchant modifies an existing merchant.
func (repo *merchantRepository) UpdateMerchant(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", merchant.ID).
		Updates(merchantM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required merchant information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update merchant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// DeleteMerchant removes a merchant; locations and memberships cascade.
func (repo *merchantRepository) DeleteMerchant(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MerchantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete merchant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:                    data.ID,
		Name:                  data.Name,
		LegalName:             data.LegalName,
		KBONumber:             data.KboNumber,
		ContactEmail:          data.ContactEmail,
		Phone:                 data.Phone,
		Address:               data.Address,
		BusinessType:          entity.BusinessType(data.BusinessType),
		Status:                entity.MerchantStatus(data.Status),
		SubscriptionTier:      entity.SubscriptionTier(data.SubscriptionTier),
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		Timezone:              data.Timezone,
		Currency:              data.Currency,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromMerchantDomain converts a domain Merchant entity to a GORM MerchantModel.
func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	return &model.MerchantModel{
		ID:                    data.ID,
		Name:                  data.Name,
		LegalName:             data.LegalName,
		KboNumber:             data.KBONumber,
		ContactEmail:          data.ContactEmail,
		Phone:                 data.Phone,
		Address:               data.Address,
		BusinessType:          data.BusinessType.String(),
		Status:                data.Status.String(),
		SubscriptionTier:      data.SubscriptionTier.String(),
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		Timezone:              data.Timezone,
		Currency:              data.Currency,
	}
}
