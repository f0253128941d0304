package org

import (
	"context"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type TeamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, teams []*types.Team) ([]*types.Team, error)
	AddMembers(ctx context.Context, tx *gorm.DB, members []*types.TeamMember) ([]*types.TeamMember, error)
	ListWithMembers(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.TeamWithMembers, error)
}

type teamRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamRepo(db *gorm.DB, baseLog *logger.Logger) TeamRepo {
	repoLog := baseLog.With("repo", "TeamRepo")
	return &teamRepo{db: db, log: repoLog}
}

func (r *teamRepo) Create(ctx context.Context, tx *gorm.DB, teams []*types.Team) ([]*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teams) == 0 {
		return []*types.Team{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepo) AddMembers(ctx context.Context, tx *gorm.DB, members []*types.TeamMember) ([]*types.TeamMember, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(members) == 0 {
		return []*types.TeamMember{}, nil
	}

	if err := transaction.WithContext(ctx).Omit("User", "Team").Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListWithMembers loads an organization's teams and their members, each
// member with its user preloaded.
func (r *teamRepo) ListWithMembers(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.TeamWithMembers, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	teams := []*types.Team{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	out := make([]*types.TeamWithMembers, 0, len(teams))
	if len(teams) == 0 {
		return out, nil
	}

	teamIDs := make([]uint, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	var members []*types.TeamMember
	if err := transaction.WithContext(ctx).
		Preload("User").
		Where("team_id IN ?", teamIDs).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	byTeam := make(map[uint][]*types.TeamMember, len(teams))
	for _, m := range members {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], m)
	}
	for _, t := range teams {
		ms := byTeam[t.ID]
		if ms == nil {
			ms = []*types.TeamMember{}
		}
		out = append(out, &types.TeamWithMembers{Team: *t, Members: ms})
	}
	return out, nil
}
