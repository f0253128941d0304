package portfolio

import (
	"context"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type GrantRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Grant) ([]*types.Grant, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Grant, error)
}

type grantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGrantRepo(db *gorm.DB, baseLog *logger.Logger) GrantRepo {
	repoLog := baseLog.With("repo", "GrantRepo")
	return &grantRepo{db: db, log: repoLog}
}

func (r *grantRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Grant) ([]*types.Grant, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Grant{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *grantRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Grant, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Grant{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
