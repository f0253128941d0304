package comms

import (
	"context"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type CommunicationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Communication) ([]*types.Communication, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Communication, error)
}

type communicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommunicationRepo(db *gorm.DB, baseLog *logger.Logger) CommunicationRepo {
	repoLog := baseLog.With("repo", "CommunicationRepo")
	return &communicationRepo{db: db, log: repoLog}
}

func (r *communicationRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Communication) ([]*types.Communication, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Communication{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *communicationRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Communication, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Communication{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
