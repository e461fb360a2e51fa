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

// invitationRepository implements the repository.InvitationRepository interface.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

// CreateInvitation persists a new invitation.
func (repo *invitationRepository) CreateInvitation(ctx context.Context, invitation *entity.Invitation) error {
	invitationM := fromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Create(invitationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInvitationToken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid merchant or inviter reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required invitation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	// Update the entity with generated values
	invitation.ID = invitationM.ID
	invitation.CreatedAt = invitationM.CreatedAt

	return nil
}

// FindInvitationByToken retrieves an invitation by its opaque token.
func (repo *invitationRepository) FindInvitationByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by token")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindInvitationByID retrieves an invitation by its unique ID.
func (repo *invitationRepository) FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by id")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindInvitationsByMerchant retrieves all invitations issued for a merchant.
func (repo *invitationRepository) FindInvitationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Invitation, error) {
	var invitationModels []*model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&invitationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find invitations by merchant")
	}

	invitations := make([]*entity.Invitation, 0, len(invitationModels))
	for _, invitationM := range invitationModels {
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations, nil
}

// UpdateInvitation modifies an existing invitation (acceptance timestamp).
func (repo *invitationRepository) UpdateInvitation(ctx context.Context, invitation *entity.Invitation) error {
	if err := repo.db.WithContext(ctx).Save(fromInvitationDomain(invitation)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update invitation")
	}

	return nil
}

// --- Mapper Functions ---

// toInvitationDomain converts a GORM InvitationModel to a domain Invitation entity.
func toInvitationDomain(data *model.InvitationModel) *entity.Invitation {
	if data == nil {
		return nil
	}

	return &entity.Invitation{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		Email:          data.Email,
		Role:           entity.MerchantRole(data.Role),
		LocationAccess: data.LocationAccess,
		InvitedBy:      data.InvitedBy,
		Token:          data.Token,
		ExpiresAt:      data.ExpiresAt,
		AcceptedAt:     data.AcceptedAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromInvitationDomain converts a domain Invitation entity to a GORM InvitationModel.
func fromInvitationDomain(data *entity.Invitation) *model.InvitationModel {
	if data == nil {
		return nil
	}

	return &model.InvitationModel{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		Email:          data.Email,
		Role:           data.Role.String(),
		LocationAccess: data.LocationAccess,
		InvitedBy:      data.InvitedBy,
		Token:          data.Token,
		ExpiresAt:      data.ExpiresAt,
		AcceptedAt:     data.AcceptedAt,
		CreatedAt:      data.CreatedAt,
	}
}
