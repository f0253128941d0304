package services

import (
	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type CommunicationService interface {
	List(dbc dbctx.Context, orgID uint) ([]*types.Communication, error)
}

type communicationService struct {
	log  *logger.Logger
	repo repos.CommunicationRepo
}

func NewCommunicationService(baseLog *logger.Logger, repo repos.CommunicationRepo) CommunicationService {
	return &communicationService{log: baseLog.With("service", "CommunicationService"), repo: repo}
}

func (s *communicationService) List(dbc dbctx.Context, orgID uint) ([]*types.Communication, error) {
	return s.repo.ListByOrganization(dbc.Context(), dbc.Tx, orgID)
}
