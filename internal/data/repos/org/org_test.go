package org

import (
	"context"
	"errors"
	"testing"

	"github.com/support371/Asset-Packet/internal/data/repos/testutil"
	types "github.com/support371/Asset-Packet/internal/domain"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
)

func TestOrganizationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewOrganizationRepo(db, testutil.Logger(t))

	if _, err := repo.First(ctx, tx); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("First: expected ErrNotFound on empty store, got %v", err)
	}

	created, err := repo.Create(ctx, tx, []*types.Organization{
		{Name: "SSA Enterprise", Slug: "ssa-enterprise", Plan: "enterprise"},
		{Name: "Second", Slug: "second"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := repo.First(ctx, tx)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if first.ID != created[0].ID {
		t.Fatalf("First: expected %d, got %d", created[0].ID, first.ID)
	}

	bySlug, err := repo.GetBySlug(ctx, tx, "second")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if bySlug.ID != created[1].ID {
		t.Fatalf("GetBySlug: unexpected org %+v", bySlug)
	}

	byID, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Plan != "enterprise" {
		t.Fatalf("GetByID: expected enterprise plan, got %q", byID.Plan)
	}

	if _, err := repo.GetBySlug(ctx, tx, "missing"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("GetBySlug: expected ErrNotFound, got %v", err)
	}
}

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserRepo(db, testutil.Logger(t))
	a := testutil.SeedOrganization(t, ctx, tx, "A")
	b := testutil.SeedOrganization(t, ctx, tx, "B")

	if _, err := repo.Create(ctx, tx, []*types.User{
		{OrganizationID: a.ID, Email: "ops@a.example", DisplayName: "Ops", Role: "admin"},
		{OrganizationID: b.ID, Email: "ops@b.example", DisplayName: "Ops", Role: "viewer"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	users, err := repo.ListByOrganization(ctx, tx, a.ID)
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ops@a.example" {
		t.Fatalf("ListByOrganization: unexpected result: %+v", users)
	}

	u, err := repo.GetByEmail(ctx, tx, "ops@b.example")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Role != "viewer" {
		t.Fatalf("GetByEmail: expected viewer, got %q", u.Role)
	}
}

func TestTeamRepoListWithMembers(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewTeamRepo(db, testutil.Logger(t))
	o := testutil.SeedOrganization(t, ctx, tx, "A")
	u1 := testutil.SeedUser(t, ctx, tx, o.ID, "admin")
	u2 := testutil.SeedUser(t, ctx, tx, o.ID, "analyst")

	teams, err := repo.Create(ctx, tx, []*types.Team{
		{OrganizationID: o.ID, Name: "Cyber Ops", Division: "security"},
		{OrganizationID: o.ID, Name: "Empty", Division: "finance"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.AddMembers(ctx, tx, []*types.TeamMember{
		{TeamID: teams[0].ID, UserID: u1.ID, Title: "Lead"},
		{TeamID: teams[0].ID, UserID: u2.ID, Title: "Analyst"},
	}); err != nil {
		t.Fatalf("AddMembers: %v", err)
	}

	got, err := repo.ListWithMembers(ctx, tx, o.ID)
	if err != nil {
		t.Fatalf("ListWithMembers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListWithMembers: expected 2 teams, got %d", len(got))
	}
	if len(got[0].Members) != 2 || got[0].Members[0].User == nil || got[0].Members[0].User.ID != u1.ID {
		t.Fatalf("ListWithMembers: unexpected members %+v", got[0].Members)
	}
	if got[1].Members == nil || len(got[1].Members) != 0 {
		t.Fatalf("ListWithMembers: expected empty member list, got %#v", got[1].Members)
	}

	other, err := repo.ListWithMembers(ctx, tx, o.ID+100)
	if err != nil {
		t.Fatalf("ListWithMembers: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("ListWithMembers: expected no teams for unknown org")
	}
}
