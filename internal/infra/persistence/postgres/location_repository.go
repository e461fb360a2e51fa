package postgres

import (
	"context"
	"encoding/json"

	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	"horeca/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location for a merchant.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM, err := fromLocationDomain(location)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMerchantNotFound.WrapMessage("invalid merchant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM)
}

// FindLocationMerchant resolves the owning merchant of a location.
// It selects only the merchant_id column since permission checks run it on
// every location-scoped request.
func (repo *locationRepository) FindLocationMerchant(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error) {
	var merchantID uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("merchant_id").
		Where("id = ?", locationID).
		Take(&merchantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrLocationNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find location merchant")
	}

	return merchantID, nil
}

// FindLocationsByMerchant retrieves all locations belonging to a merchant.
func (repo *locationRepository) FindLocationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by merchant")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		location, err := toLocationDomain(locationM)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

// CountLocationsByMerchant returns the number of locations a merchant has.
func (repo *locationRepository) CountLocationsByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("merchant_id = ?", merchantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations by merchant")
	}

	return count, nil
}

// UpdateLocation modifies an existing location.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM, err := fromLocationDomain(location)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(locationM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteLocation removes a location by its ID.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) (*entity.Location, error) {
	if data == nil {
		return nil, nil
	}

	var settings *entity.LocationSettings
	if len(data.Settings) > 0 {
		settings = &entity.LocationSettings{}
		if err := json.Unmarshal([]byte(data.Settings), settings); err != nil {
			return nil, errors.Wrap(err, "unmarshal location settings")
		}
	}

	return &entity.Location{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		Name:         data.Name,
		Address:      data.Address,
		PostalCode:   data.PostalCode,
		City:         data.City,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Email:        data.Email,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Status:       entity.LocationStatus(data.Status),
		OpeningHours: data.OpeningHours,
		Settings:     settings,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) (*model.LocationModel, error) {
	if data == nil {
		return nil, nil
	}

	var settings model.JSONObject
	if data.Settings != nil {
		raw, err := json.Marshal(data.Settings)
		if err != nil {
			return nil, errors.Wrap(err, "marshal location settings")
		}
		settings = model.JSONObject(raw)
	}

	return &model.LocationModel{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		Name:         data.Name,
		Address:      data.Address,
		PostalCode:   data.PostalCode,
		City:         data.City,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Phone:        data.Phone,
		Email:        data.Email,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Status:       data.Status.String(),
		OpeningHours: data.OpeningHours,
		Settings:     settings,
	}, nil
}
