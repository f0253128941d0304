package app

import (
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/observability"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

type Services struct {
	Auth          services.AuthService
	Audit         services.AuditService
	Packet        services.PacketService
	Portfolio     services.PortfolioService
	Communication services.CommunicationService
	Team          services.TeamService
	Diagnostics   services.DiagnosticsService
	Seed          services.SeedService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, c Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	audit := services.NewAuditService(db, log, r.AuditLog, metrics)
	return Services{
		Auth:          services.NewAuthService(log, cfg.AuthMode, cfg.JWTSecretKey),
		Audit:         audit,
		Packet:        services.NewPacketService(db, log, r.Packet, r.Section, audit, c.PacketCache, metrics),
		Portfolio:     services.NewPortfolioService(db, log, r.Portfolio, r.Investment, r.Grant),
		Communication: services.NewCommunicationService(log, r.Communication),
		Team:          services.NewTeamService(log, r.Team),
		Diagnostics:   services.NewDiagnosticsService(metrics, cfg.DiagnosticsNodes),
		Seed: services.NewSeedService(db, log, services.SeedRepos{
			Organizations:  r.Organization,
			Users:          r.User,
			Teams:          r.Team,
			Portfolios:     r.Portfolio,
			Investments:    r.Investment,
			Grants:         r.Grant,
			Communications: r.Communication,
			Packets:        r.Packet,
			Sections:       r.Section,
		}, audit),
	}
}
