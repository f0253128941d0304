package packets

import (
	"time"

	"gorm.io/datatypes"

	"github.com/support371/Asset-Packet/internal/domain/org"
)

// Packet is a titled container of ordered content sections.
type Packet struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string            `gorm:"not null;column:title" json:"title"`
	Description    *string           `gorm:"column:description" json:"description"`
	Meta           datatypes.JSON    `gorm:"column:meta" json:"meta"`
	CreatedAt      time.Time         `gorm:"not null;column:created_at" json:"createdAt"`
	OrganizationID *uint             `gorm:"index;column:organization_id" json:"organizationId,omitempty"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Packet) TableName() string { return "packets" }

// PacketWithSections is the read model returned by aggregation. It is
// never persisted.
type PacketWithSections struct {
	Packet
	Sections []*Section `json:"sections"`
}

// Compose builds the read model, copying and sorting sections into
// reading order. p must not be nil.
func Compose(p *Packet, sections []*Section) *PacketWithSections {
	sorted := make([]*Section, 0, len(sections))
	for _, s := range sections {
		if s != nil {
			sorted = append(sorted, s)
		}
	}
	SortSections(sorted)
	return &PacketWithSections{Packet: *p, Sections: sorted}
}
