package comms

import (
	"time"

	"github.com/support371/Asset-Packet/internal/domain/org"
)

// Communication is an outbound newsletter, bulletin or notice.
type Communication struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint              `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Type           string            `gorm:"not null;column:type" json:"type"`
	Title          string            `gorm:"not null;column:title" json:"title"`
	Content        string            `gorm:"column:content" json:"content"`
	Status         string            `gorm:"not null;default:'draft';column:status" json:"status"`
	CreatedAt      time.Time         `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Communication) TableName() string { return "communications" }
