package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/repos"
	"github.com/support371/Asset-Packet/internal/data/repos/testutil"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func newSeedRepos(db *gorm.DB, log *logger.Logger) SeedRepos {
	return SeedRepos{
		Organizations:  repos.NewOrganizationRepo(db, log),
		Users:          repos.NewUserRepo(db, log),
		Teams:          repos.NewTeamRepo(db, log),
		Portfolios:     repos.NewPortfolioRepo(db, log),
		Investments:    repos.NewInvestmentRepo(db, log),
		Grants:         repos.NewGrantRepo(db, log),
		Communications: repos.NewCommunicationRepo(db, log),
		Packets:        repos.NewPacketRepo(db, log),
		Sections:       repos.NewSectionRepo(db, log),
	}
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	r := newSeedRepos(db, log)
	auditSvc := NewAuditService(db, log, repos.NewAuditLogRepo(db, log), nil)
	svc := NewSeedService(db, log, r, auditSvc)
	ctx := context.Background()

	seeded, err := svc.EnsureSeeded(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = svc.EnsureSeeded(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	var orgs []*types.Organization
	require.NoError(t, db.Find(&orgs).Error)
	require.Len(t, orgs, 1)
	require.Equal(t, "ssa-enterprise", orgs[0].Slug)

	portfolio, err := NewPortfolioService(db, log, r.Portfolios, r.Investments, r.Grants).ListPortfolios(dbctx.New(ctx), orgs[0].ID)
	require.NoError(t, err)
	require.Len(t, portfolio, 2)
	require.Equal(t, "Cyber Intel Node A", portfolio[0].Name)
	require.EqualValues(t, 8500000, portfolio[1].Valuation)

	comms, err := NewCommunicationService(log, r.Communications).List(dbctx.New(ctx), orgs[0].ID)
	require.NoError(t, err)
	require.Len(t, comms, 1)
	require.Equal(t, "Global Security Update Q1", comms[0].Title)

	teams, err := NewTeamService(log, r.Teams).ListWithMembers(dbctx.New(ctx), orgs[0].ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Len(t, teams[0].Members, 2)

	packets, err := r.Packets.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, packets, 1)
	full, err := r.Packets.GetWithSections(ctx, nil, packets[0].ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Summary", "Holdings", "Evidence", "Notes"}, sectionTitles(full.Sections))

	logs, err := auditSvc.List(dbctx.New(ctx), orgs[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "system.seeded", logs[0].Action)
}

// emptyLookingOrgs hides existing organizations from the pre-check, as a
// seeder racing another one would see them.
type emptyLookingOrgs struct {
	repos.OrganizationRepo
}

func (emptyLookingOrgs) First(context.Context, *gorm.DB) (*types.Organization, error) {
	return nil, pkgerrors.ErrNotFound
}

func TestEnsureSeededLosingRaceIsNotAnError(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	auditSvc := NewAuditService(db, log, repos.NewAuditLogRepo(db, log), nil)
	ctx := context.Background()

	r := newSeedRepos(db, log)
	seeded, err := NewSeedService(db, log, r, auditSvc).EnsureSeeded(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	r.Organizations = emptyLookingOrgs{r.Organizations}
	seeded, err = NewSeedService(db, log, r, auditSvc).EnsureSeeded(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	var n int64
	require.NoError(t, db.Model(&types.Packet{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func sectionTitles(sections []*types.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Title)
	}
	return out
}
