package audit

import (
	"time"

	"gorm.io/datatypes"

	"github.com/support371/Asset-Packet/internal/domain/org"
)

const (
	ActionPacketCreated  = "packet.created"
	ActionSectionCreated = "section.created"
	ActionSeeded         = "system.seeded"
)

// AuditLog is an append-only record of a mutation.
type AuditLog struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID *uint             `gorm:"index;column:organization_id" json:"organizationId"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Actor          string            `gorm:"not null;column:actor" json:"actor"`
	Action         string            `gorm:"not null;index;column:action" json:"action"`
	EntityType     string            `gorm:"column:entity_type" json:"entityType"`
	EntityID       *uint             `gorm:"column:entity_id" json:"entityId"`
	Status         string            `gorm:"not null;default:'ok';column:status" json:"status"`
	Details        datatypes.JSON    `gorm:"column:details" json:"details"`
	CreatedAt      time.Time         `gorm:"not null;index;column:created_at" json:"createdAt"`
}

func (AuditLog) TableName() string { return "audit_logs" }
