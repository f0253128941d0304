package domain

import (
	"github.com/support371/Asset-Packet/internal/domain/audit"
	"github.com/support371/Asset-Packet/internal/domain/comms"
	"github.com/support371/Asset-Packet/internal/domain/org"
	"github.com/support371/Asset-Packet/internal/domain/packets"
	"github.com/support371/Asset-Packet/internal/domain/portfolio"
)

const (
	SectionSummary = packets.SectionSummary
	SectionGallery = packets.SectionGallery
	SectionTable   = packets.SectionTable
	SectionText    = packets.SectionText
)

type Organization = org.Organization
type User = org.User
type Team = org.Team
type TeamMember = org.TeamMember
type TeamWithMembers = org.TeamWithMembers

type Packet = packets.Packet
type Section = packets.Section
type SectionType = packets.SectionType
type PacketWithSections = packets.PacketWithSections
type Payload = packets.Payload
type SummaryPayload = packets.SummaryPayload
type TextPayload = packets.TextPayload
type GalleryPayload = packets.GalleryPayload
type TablePayload = packets.TablePayload

var (
	ComposePacket = packets.Compose
	NewSection    = packets.NewSection
)

type Portfolio = portfolio.Portfolio
type Investment = portfolio.Investment
type Grant = portfolio.Grant

type Communication = comms.Communication

type AuditLog = audit.AuditLog

// Models lists every persisted model in dependency order (parents first).
func Models() []interface{} {
	return []interface{}{
		&Organization{},
		&User{},
		&Team{},
		&TeamMember{},
		&Packet{},
		&Section{},
		&Portfolio{},
		&Investment{},
		&Grant{},
		&Communication{},
		&AuditLog{},
	}
}
