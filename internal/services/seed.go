package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/db"
	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/domain/audit"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/pkg/pointers"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

const seedOrgSlug = "ssa-enterprise"

type SeedRepos struct {
	Organizations  repos.OrganizationRepo
	Users          repos.UserRepo
	Teams          repos.TeamRepo
	Portfolios     repos.PortfolioRepo
	Investments    repos.InvestmentRepo
	Grants         repos.GrantRepo
	Communications repos.CommunicationRepo
	Packets        repos.PacketRepo
	Sections       repos.SectionRepo
}

type SeedService interface {
	// EnsureSeeded writes the baseline tenant and its records when the
	// store holds no organization. It reports whether anything was written.
	EnsureSeeded(ctx context.Context) (bool, error)
}

type seedService struct {
	db    *gorm.DB
	log   *logger.Logger
	repos SeedRepos
	audit AuditService
}

func NewSeedService(db *gorm.DB, baseLog *logger.Logger, r SeedRepos, auditService AuditService) SeedService {
	return &seedService{
		db:    db,
		log:   baseLog.With("service", "SeedService"),
		repos: r,
		audit: auditService,
	}
}

func (s *seedService) EnsureSeeded(ctx context.Context) (bool, error) {
	seeded := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.repos.Organizations.First(ctx, tx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pkgerrors.ErrNotFound) {
			return fmt.Errorf("check organizations: %w", err)
		}
		if err := s.seed(ctx, tx); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil && db.IsUniqueViolation(err) {
		// A concurrent seeder committed the baseline tenant first.
		if existing, lookupErr := s.repos.Organizations.GetBySlug(ctx, nil, seedOrgSlug); lookupErr == nil {
			s.log.Info("Seed skipped; baseline tenant written concurrently", "organization_id", existing.ID)
			return false, nil
		}
	}
	if err != nil {
		s.log.Error("Seeding failed", "error", err)
		return false, err
	}
	if seeded {
		s.log.Info("Seeded baseline data", "organization", seedOrgSlug)
	} else {
		s.log.Info("Seed skipped; store already initialized")
	}
	return seeded, nil
}

func (s *seedService) seed(ctx context.Context, tx *gorm.DB) error {
	now := time.Now().UTC()

	orgs, err := s.repos.Organizations.Create(ctx, tx, []*types.Organization{
		{Name: "SSA Enterprise", Slug: seedOrgSlug, Plan: "enterprise", CreatedAt: now},
	})
	if err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}
	orgID := orgs[0].ID

	users, err := s.repos.Users.Create(ctx, tx, []*types.User{
		{OrganizationID: orgID, Email: "command@ssa-enterprise.example", DisplayName: "Command Director", Role: "super_admin", Division: "executive", CreatedAt: now},
		{OrganizationID: orgID, Email: "ops@ssa-enterprise.example", DisplayName: "Operations Lead", Role: "admin", Division: "operations", CreatedAt: now},
		{OrganizationID: orgID, Email: "analyst@ssa-enterprise.example", DisplayName: "Intel Analyst", Role: "analyst", Division: "intelligence", CreatedAt: now},
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	teams, err := s.repos.Teams.Create(ctx, tx, []*types.Team{
		{OrganizationID: orgID, Name: "Cyber Command", Division: "intelligence", CreatedAt: now},
	})
	if err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if _, err := s.repos.Teams.AddMembers(ctx, tx, []*types.TeamMember{
		{TeamID: teams[0].ID, UserID: users[1].ID, Title: "Team Lead"},
		{TeamID: teams[0].ID, UserID: users[2].ID, Title: "Analyst"},
	}); err != nil {
		return fmt.Errorf("seed team members: %w", err)
	}

	portfolios, err := s.repos.Portfolios.Create(ctx, tx, []*types.Portfolio{
		{OrganizationID: orgID, Name: "Cyber Intel Node A", Status: "active", Valuation: 1200000, CreatedAt: now},
		{OrganizationID: orgID, Name: "Alliance Property Group", Status: "active", Valuation: 8500000, CreatedAt: now},
	})
	if err != nil {
		return fmt.Errorf("seed portfolio: %w", err)
	}

	if _, err := s.repos.Investments.Create(ctx, tx, []*types.Investment{
		{OrganizationID: orgID, PortfolioID: &portfolios[0].ID, Name: "Node A sensor expansion", Amount: 350000, Stage: "series-a", CreatedAt: now},
		{OrganizationID: orgID, PortfolioID: &portfolios[1].ID, Name: "Alliance tower retrofit", Amount: 1200000, Stage: "growth", CreatedAt: now},
	}); err != nil {
		return fmt.Errorf("seed investments: %w", err)
	}

	if _, err := s.repos.Grants.Create(ctx, tx, []*types.Grant{
		{OrganizationID: orgID, Title: "Critical Infrastructure Resilience", Recipient: "Regional Security Council", Amount: 250000, Status: "awarded", AwardedAt: pointers.Time(now), CreatedAt: now},
		{OrganizationID: orgID, Title: "Community Cyber Readiness", Recipient: "Civic Tech Alliance", Amount: 75000, Status: "pending", CreatedAt: now},
	}); err != nil {
		return fmt.Errorf("seed grants: %w", err)
	}

	if _, err := s.repos.Communications.Create(ctx, tx, []*types.Communication{
		{OrganizationID: orgID, Type: "newsletter", Title: "Global Security Update Q1", Content: "Updates on node synchronization...", Status: "published", CreatedAt: now},
	}); err != nil {
		return fmt.Errorf("seed communications: %w", err)
	}

	if err := s.seedPacket(ctx, tx, orgID, now); err != nil {
		return err
	}

	return s.audit.Record(ctx, tx, &types.AuditLog{
		OrganizationID: &orgID,
		Actor:          systemActor,
		Action:         audit.ActionSeeded,
		EntityType:     "organization",
		EntityID:       &orgID,
	})
}

func (s *seedService) seedPacket(ctx context.Context, tx *gorm.DB, orgID uint, now time.Time) error {
	packets, err := s.repos.Packets.Create(ctx, tx, []*types.Packet{{
		Title:          "Command Center Briefing",
		Description:    pointers.String("Baseline asset packet for the SSA Enterprise tenant."),
		CreatedAt:      now,
		OrganizationID: &orgID,
	}})
	if err != nil {
		return fmt.Errorf("seed packet: %w", err)
	}
	packetID := packets[0].ID

	defs := []struct {
		title   string
		order   int
		payload types.Payload
	}{
		{"Summary", 1, types.SummaryPayload{Text: "All systems nominal."}},
		{"Holdings", 2, types.TablePayload{
			Headers: []string{"Asset", "Status", "Valuation"},
			Rows: [][]string{
				{"Cyber Intel Node A", "active", "1200000"},
				{"Alliance Property Group", "active", "8500000"},
			},
		}},
		{"Evidence", 3, types.GalleryPayload{Images: []string{}}},
		{"Notes", 4, types.TextPayload{Text: "Node synchronization continues across ID-X99, SGP-1 and NYC-4."}},
	}
	sections := make([]*types.Section, 0, len(defs))
	for _, def := range defs {
		sec, err := types.NewSection(packetID, def.title, def.order, def.payload)
		if err != nil {
			return fmt.Errorf("seed section %q: %w", def.title, err)
		}
		sections = append(sections, sec)
	}
	if _, err := s.repos.Sections.Create(ctx, tx, sections); err != nil {
		return fmt.Errorf("seed sections: %w", err)
	}
	return nil
}
