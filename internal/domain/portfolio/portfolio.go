package portfolio

import (
	"time"

	"github.com/support371/Asset-Packet/internal/domain/org"
)

type Portfolio struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint              `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name           string            `gorm:"not null;column:name" json:"name"`
	Status         string            `gorm:"not null;default:'active';column:status" json:"status"`
	Valuation      int64             `gorm:"not null;default:0;column:valuation" json:"valuation"`
	CreatedAt      time.Time         `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Portfolio) TableName() string { return "portfolio" }

type Investment struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint              `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PortfolioID    *uint             `gorm:"index;column:portfolio_id" json:"portfolioId"`
	Portfolio      *Portfolio        `gorm:"foreignKey:PortfolioID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Name           string            `gorm:"not null;column:name" json:"name"`
	Amount         int64             `gorm:"not null;default:0;column:amount" json:"amount"`
	Stage          string            `gorm:"column:stage" json:"stage"`
	CreatedAt      time.Time         `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Investment) TableName() string { return "investments" }

type Grant struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint              `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *org.Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title          string            `gorm:"not null;column:title" json:"title"`
	Recipient      string            `gorm:"column:recipient" json:"recipient"`
	Amount         int64             `gorm:"not null;default:0;column:amount" json:"amount"`
	Status         string            `gorm:"not null;default:'pending';column:status" json:"status"`
	AwardedAt      *time.Time        `gorm:"column:awarded_at" json:"awardedAt"`
	CreatedAt      time.Time         `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Grant) TableName() string { return "grants" }
