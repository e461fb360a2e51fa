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

// personnelRepository implements the repository.PersonnelRepository interface.
type personnelRepository struct {
	db *gorm.DB
}

// NewPersonnelRepository is the constructor for personnelRepository.
func NewPersonnelRepository(db *gorm.DB) repository.PersonnelRepository {
	return &personnelRepository{db: db}
}

// FindPersonnelByUserID retrieves the personnel row for a user.
func (repo *personnelRepository) FindPersonnelByUserID(ctx context.Context, userID uuid.UUID) (*entity.PlatformPersonnel, error) {
	var personnelM model.PlatformPersonnelModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&personnelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonnelNotFound
		}

		return nil, errors.Wrap(err, "failed to find personnel by user id")
	}

	return toPersonnelDomain(&personnelM), nil
}

// CreatePersonnel persists a new platform personnel row.
func (repo *personnelRepository) CreatePersonnel(ctx context.Context, personnel *entity.PlatformPersonnel) error {
	personnelM := fromPersonnelDomain(personnel)

	if err := repo.db.WithContext(ctx).Create(personnelM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("personnel row already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create personnel")
	}

	personnel.CreatedAt = personnelM.CreatedAt

	return nil
}

// UpdatePersonnel modifies an existing personnel row (role, department, active flag).
func (repo *personnelRepository) UpdatePersonnel(ctx context.Context, personnel *entity.PlatformPersonnel) error {
	// Save rather than Updates: deactivation writes is_active back to false.
	if err := repo.db.WithContext(ctx).Save(fromPersonnelDomain(personnel)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update personnel")
	}

	return nil
}

// --- Mapper Functions ---

// toPersonnelDomain converts a GORM PlatformPersonnelModel to a domain PlatformPersonnel entity.
func toPersonnelDomain(data *model.PlatformPersonnelModel) *entity.PlatformPersonnel {
	if data == nil {
		return nil
	}

	return &entity.PlatformPersonnel{
		UserID:      data.UserID,
		Role:        entity.PersonnelRole(data.Role),
		Department:  data.Department,
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPersonnelDomain converts a domain PlatformPersonnel entity to a GORM PlatformPersonnelModel.
func fromPersonnelDomain(data *entity.PlatformPersonnel) *model.PlatformPersonnelModel {
	if data == nil {
		return nil
	}

	return &model.PlatformPersonnelModel{
		UserID:      data.UserID,
		Role:        data.Role.String(),
		Department:  data.Department,
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
	}
}
