package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
)

var fixtureSeq atomic.Int64

func SeedOrganization(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Organization {
	tb.Helper()
	o := &types.Organization{
		Name:      name,
		Slug:      fmt.Sprintf("org-%d", fixtureSeq.Add(1)),
		Plan:      "enterprise",
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed organization: %v", err)
	}
	return o
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, orgID uint, role string) *types.User {
	tb.Helper()
	n := fixtureSeq.Add(1)
	u := &types.User{
		OrganizationID: orgID,
		Email:          fmt.Sprintf("user%d@example.com", n),
		DisplayName:    fmt.Sprintf("User %d", n),
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPacket(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Packet {
	tb.Helper()
	p := &types.Packet{
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed packet: %v", err)
	}
	return p
}

func SeedSection(tb testing.TB, ctx context.Context, tx *gorm.DB, packetID uint, title string, order int, p types.Payload) *types.Section {
	tb.Helper()
	s, err := types.NewSection(packetID, title, order, p)
	if err != nil {
		tb.Fatalf("build section: %v", err)
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed section: %v", err)
	}
	return s
}
