package services

import (
	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type TeamService interface {
	ListWithMembers(dbc dbctx.Context, orgID uint) ([]*types.TeamWithMembers, error)
}

type teamService struct {
	log  *logger.Logger
	repo repos.TeamRepo
}

func NewTeamService(baseLog *logger.Logger, repo repos.TeamRepo) TeamService {
	return &teamService{log: baseLog.With("service", "TeamService"), repo: repo}
}

func (s *teamService) ListWithMembers(dbc dbctx.Context, orgID uint) ([]*types.TeamWithMembers, error) {
	return s.repo.ListWithMembers(dbc.Context(), dbc.Tx, orgID)
}
