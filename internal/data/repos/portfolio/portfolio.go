package portfolio

import (
	"context"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type PortfolioRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Portfolio) ([]*types.Portfolio, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Portfolio, error)
}

type portfolioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortfolioRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioRepo {
	repoLog := baseLog.With("repo", "PortfolioRepo")
	return &portfolioRepo{db: db, log: repoLog}
}

func (r *portfolioRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Portfolio) ([]*types.Portfolio, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Portfolio{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *portfolioRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.Portfolio, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Portfolio{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
