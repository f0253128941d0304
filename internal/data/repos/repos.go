package repos

import (
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/repos/audit"
	"github.com/support371/Asset-Packet/internal/data/repos/comms"
	"github.com/support371/Asset-Packet/internal/data/repos/org"
	"github.com/support371/Asset-Packet/internal/data/repos/packets"
	"github.com/support371/Asset-Packet/internal/data/repos/portfolio"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type OrganizationRepo = org.OrganizationRepo
type UserRepo = org.UserRepo
type TeamRepo = org.TeamRepo

type PacketRepo = packets.PacketRepo
type SectionRepo = packets.SectionRepo

type PortfolioRepo = portfolio.PortfolioRepo
type InvestmentRepo = portfolio.InvestmentRepo
type GrantRepo = portfolio.GrantRepo

type CommunicationRepo = comms.CommunicationRepo

type AuditLogRepo = audit.AuditLogRepo

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	return org.NewOrganizationRepo(db, baseLog)
}
func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return org.NewUserRepo(db, baseLog) }
func NewTeamRepo(db *gorm.DB, baseLog *logger.Logger) TeamRepo { return org.NewTeamRepo(db, baseLog) }

func NewPacketRepo(db *gorm.DB, baseLog *logger.Logger) PacketRepo {
	return packets.NewPacketRepo(db, baseLog)
}
func NewSectionRepo(db *gorm.DB, baseLog *logger.Logger) SectionRepo {
	return packets.NewSectionRepo(db, baseLog)
}

func NewPortfolioRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioRepo {
	return portfolio.NewPortfolioRepo(db, baseLog)
}
func NewInvestmentRepo(db *gorm.DB, baseLog *logger.Logger) InvestmentRepo {
	return portfolio.NewInvestmentRepo(db, baseLog)
}
func NewGrantRepo(db *gorm.DB, baseLog *logger.Logger) GrantRepo {
	return portfolio.NewGrantRepo(db, baseLog)
}

func NewCommunicationRepo(db *gorm.DB, baseLog *logger.Logger) CommunicationRepo {
	return comms.NewCommunicationRepo(db, baseLog)
}

func NewAuditLogRepo(db *gorm.DB, baseLog *logger.Logger) AuditLogRepo {
	return audit.NewAuditLogRepo(db, baseLog)
}
