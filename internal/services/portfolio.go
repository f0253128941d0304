package services

import (
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type PortfolioService interface {
	ListPortfolios(dbc dbctx.Context, orgID uint) ([]*types.Portfolio, error)
	ListInvestments(dbc dbctx.Context, orgID uint) ([]*types.Investment, error)
	ListGrants(dbc dbctx.Context, orgID uint) ([]*types.Grant, error)
}

type portfolioService struct {
	db             *gorm.DB
	log            *logger.Logger
	portfolioRepo  repos.PortfolioRepo
	investmentRepo repos.InvestmentRepo
	grantRepo      repos.GrantRepo
}

func NewPortfolioService(
	db *gorm.DB,
	baseLog *logger.Logger,
	portfolioRepo repos.PortfolioRepo,
	investmentRepo repos.InvestmentRepo,
	grantRepo repos.GrantRepo,
) PortfolioService {
	return &portfolioService{
		db:             db,
		log:            baseLog.With("service", "PortfolioService"),
		portfolioRepo:  portfolioRepo,
		investmentRepo: investmentRepo,
		grantRepo:      grantRepo,
	}
}

func (s *portfolioService) ListPortfolios(dbc dbctx.Context, orgID uint) ([]*types.Portfolio, error) {
	return s.portfolioRepo.ListByOrganization(dbc.Context(), dbc.Tx, orgID)
}

func (s *portfolioService) ListInvestments(dbc dbctx.Context, orgID uint) ([]*types.Investment, error) {
	return s.investmentRepo.ListByOrganization(dbc.Context(), dbc.Tx, orgID)
}

func (s *portfolioService) ListGrants(dbc dbctx.Context, orgID uint) ([]*types.Grant, error) {
	return s.grantRepo.ListByOrganization(dbc.Context(), dbc.Tx, orgID)
}
