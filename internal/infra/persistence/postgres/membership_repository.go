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

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// CreateMembership persists a new membership row.
func (repo *membershipRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		// The (merchant, user) pair is unique: a second grant is a conflict,
		// not a database failure.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or merchant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required membership information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	// Update the entity with generated values
	membership.ID = membershipM.ID
	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

// FindMembership retrieves the unique membership row for a (user, merchant) pair.
func (repo *membershipRepository) FindMembership(ctx context.Context, userID, merchantID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MerchantUserModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND merchant_id = ?", userID, merchantID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipByID retrieves a membership row by its unique ID.
func (repo *membershipRepository) FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MerchantUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership by id")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipsByUser retrieves all memberships of a user across merchants.
func (repo *membershipRepository) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var membershipModels []*model.MerchantUserModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by user")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// FindMembershipsByMerchant retrieves all memberships of a merchant.
func (repo *membershipRepository) FindMembershipsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Membership, error) {
	var membershipModels []*model.MerchantUserModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by merchant")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// UpdateMembership modifies an existing membership (role, location access, active flag).
func (repo *membershipRepository) UpdateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	// Save rather than Updates: location access and the active flag must be
	// writable back to their zero values.
	if err := repo.db.WithContext(ctx).Save(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required membership information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update membership")
	}

	return nil
}

// DeleteMembership removes a membership by its ID.
func (repo *membershipRepository) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MerchantUserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MerchantUserModel to a domain Membership entity.
func toMembershipDomain(data *model.MerchantUserModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		UserID:         data.UserID,
		Role:           entity.MerchantRole(data.Role),
		LocationAccess: data.LocationAccess,
		Permissions:    data.Permissions,
		IsActive:       data.IsActive,
		InvitedBy:      data.InvitedBy,
		InvitedAt:      data.InvitedAt,
		AcceptedAt:     data.AcceptedAt,
		LastActiveAt:   data.LastActiveAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MerchantUserModel.
func fromMembershipDomain(data *entity.Membership) *model.MerchantUserModel {
	if data == nil {
		return nil
	}

	return &model.MerchantUserModel{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		UserID:         data.UserID,
		Role:           data.Role.String(),
		LocationAccess: data.LocationAccess,
		Permissions:    data.Permissions,
		IsActive:       data.IsActive,
		InvitedBy:      data.InvitedBy,
		InvitedAt:      data.InvitedAt,
		AcceptedAt:     data.AcceptedAt,
		LastActiveAt:   data.LastActiveAt,
		CreatedAt:      data.CreatedAt,
	}
}
