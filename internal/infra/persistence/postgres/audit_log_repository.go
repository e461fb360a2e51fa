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

const defaultAuditLogLimit = 100

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// CreateAuditLog appends one audit row.
func (repo *auditLogRepository) CreateAuditLog(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.RecordedAt = logM.CreatedAt

	return nil
}

// FindAuditLogsByMerchant returns a merchant's audit rows, newest first.
func (repo *auditLogRepository) FindAuditLogsByMerchant(ctx context.Context, merchantID uuid.UUID, limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 || limit > defaultAuditLogLimit {
		limit = defaultAuditLogLimit
	}

	var logModels []*model.AuditLogModel
	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find audit logs by merchant")
	}

	logs := make([]*entity.AuditLog, len(logModels))
	for i, logM := range logModels {
		logs[i] = toAuditLogDomain(logM)
	}

	return logs, nil
}

func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLog {
	return &entity.AuditLog{
		ID:         data.ID,
		RequestID:  data.RequestID,
		Action:     data.Action,
		ActorID:    data.ActorID,
		MerchantID: data.MerchantID,
		SubjectID:  data.SubjectID,
		OccurredAt: data.OccurredAt,
		RecordedAt: data.CreatedAt,
	}
}

func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	return &model.AuditLogModel{
		ID:         data.ID,
		RequestID:  data.RequestID,
		Action:     data.Action,
		ActorID:    data.ActorID,
		MerchantID: data.MerchantID,
		SubjectID:  data.SubjectID,
		OccurredAt: data.OccurredAt,
	}
}
