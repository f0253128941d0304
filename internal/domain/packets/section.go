package packets

import (
	"sort"

	"gorm.io/datatypes"
)

// Section is one typed content block within a packet.
type Section struct {
	ID       uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PacketID uint           `gorm:"not null;index:idx_sections_packet_order,priority:1;column:packet_id" json:"packetId"`
	Packet   *Packet        `gorm:"foreignKey:PacketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title    string         `gorm:"not null;column:title" json:"title"`
	Type     SectionType    `gorm:"not null;column:type" json:"type"`
	Content  *string        `gorm:"column:content" json:"content"`
	Data     datatypes.JSON `gorm:"column:data" json:"data"`
	Order    int            `gorm:"not null;index:idx_sections_packet_order,priority:2;column:order" json:"order"`
}

func (Section) TableName() string { return "sections" }

// Payload decodes the section's content/data into its typed variant.
func (s *Section) Payload() (Payload, error) {
	return DecodePayload(s.Type, s.Content, s.Data)
}

// SortSections orders sections ascending by Order. Ties keep insertion
// order, which is ascending ID for persisted rows.
func SortSections(sections []*Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.ID == 0 || b.ID == 0 {
			return false
		}
		return a.ID < b.ID
	})
}

// NewSection builds an unsaved section row from a typed payload.
func NewSection(packetID uint, title string, order int, p Payload) (*Section, error) {
	content, data, err := EncodePayload(p)
	if err != nil {
		return nil, err
	}
	return &Section{
		PacketID: packetID,
		Title:    title,
		Type:     p.Type(),
		Content:  content,
		Data:     data,
		Order:    order,
	}, nil
}
