package audit

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/support371/Asset-Packet/internal/data/repos/testutil"
	types "github.com/support371/Asset-Packet/internal/domain"
)

func TestAuditLogRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewAuditLogRepo(db, testutil.Logger(t))
	o := testutil.SeedOrganization(t, ctx, tx, "A")

	now := time.Now().UTC()
	var entries []*types.AuditLog
	for i := 0; i < 3; i++ {
		entries = append(entries, &types.AuditLog{
			OrganizationID: &o.ID,
			Actor:          "ops",
			Action:         "packet.created",
			EntityType:     "packet",
			Details:        datatypes.JSON(`{"n":1}`),
			CreatedAt:      now.Add(time.Duration(i) * time.Minute),
		})
	}
	if _, err := repo.Create(ctx, tx, entries); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByOrganization(ctx, tx, o.ID, 2)
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByOrganization: expected limit 2, got %d", len(got))
	}
	if got[0].ID != entries[2].ID || got[0].Status != "ok" {
		t.Fatalf("ListByOrganization: expected newest first, got %+v", got[0])
	}

	all, err := repo.ListByOrganization(ctx, tx, o.ID, 0)
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListByOrganization: expected 3 with default limit, got %d", len(all))
	}
}
