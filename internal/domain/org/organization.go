package org

import "time"

// Organization is the tenant that scopes users and records.
type Organization struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Plan      string    `gorm:"not null;default:'standard';column:plan" json:"plan"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Organization) TableName() string { return "organizations" }

type User struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint          `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Email          string        `gorm:"uniqueIndex;not null;column:email" json:"email"`
	DisplayName    string        `gorm:"not null;column:display_name" json:"displayName"`
	Role           string        `gorm:"not null;default:'viewer';column:role" json:"role"`
	Division       string        `gorm:"column:division" json:"division"`
	CreatedAt      time.Time     `gorm:"not null;column:created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }

type Team struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint          `gorm:"not null;index;column:organization_id" json:"organizationId"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name           string        `gorm:"not null;column:name" json:"name"`
	Division       string        `gorm:"column:division" json:"division"`
	CreatedAt      time.Time     `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Team) TableName() string { return "teams" }

type TeamMember struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID uint   `gorm:"not null;uniqueIndex:idx_team_members_team_user,priority:1;column:team_id" json:"teamId"`
	Team   *Team  `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_team_members_team_user,priority:2;column:user_id" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Title  string `gorm:"column:title" json:"title"`
}

func (TeamMember) TableName() string { return "team_members" }

// TeamWithMembers is the read model for the team view.
type TeamWithMembers struct {
	Team
	Members []*TeamMember `json:"members"`
}
