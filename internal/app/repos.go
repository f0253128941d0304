package app

import (
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/repos"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type Repos struct {
	Organization  repos.OrganizationRepo
	User          repos.UserRepo
	Team          repos.TeamRepo
	Packet        repos.PacketRepo
	Section       repos.SectionRepo
	Portfolio     repos.PortfolioRepo
	Investment    repos.InvestmentRepo
	Grant         repos.GrantRepo
	Communication repos.CommunicationRepo
	AuditLog      repos.AuditLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Organization:  repos.NewOrganizationRepo(db, log),
		User:          repos.NewUserRepo(db, log),
		Team:          repos.NewTeamRepo(db, log),
		Packet:        repos.NewPacketRepo(db, log),
		Section:       repos.NewSectionRepo(db, log),
		Portfolio:     repos.NewPortfolioRepo(db, log),
		Investment:    repos.NewInvestmentRepo(db, log),
		Grant:         repos.NewGrantRepo(db, log),
		Communication: repos.NewCommunicationRepo(db, log),
		AuditLog:      repos.NewAuditLogRepo(db, log),
	}
}
