package portfolio

import (
	"context"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type InvestmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Investment) ([]*types.Investment, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Investment, error)
}

type investmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvestmentRepo(db *gorm.DB, baseLog *logger.Logger) InvestmentRepo {
	repoLog := baseLog.With("repo", "InvestmentRepo")
	return &investmentRepo{db: db, log: repoLog}
}

func (r *investmentRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Investment) ([]*types.Investment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Investment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *investmentRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Investment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Investment{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
