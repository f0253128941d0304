package packets

import (
	"context"
	"errors"
	"testing"

	"github.com/support371/Asset-Packet/internal/data/repos/testutil"
	types "github.com/support371/Asset-Packet/internal/domain"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
)

func TestPacketRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPacketRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.Packet{{Title: "Alpha"}, {Title: "Beta"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID == 0 {
		t.Fatalf("Create: expected 2 packets with ids, got %+v", created)
	}
	if created[0].ID == created[1].ID {
		t.Fatalf("Create: ids must be distinct")
	}
	if created[0].CreatedAt.IsZero() {
		t.Fatalf("Create: expected createdAt to be assigned")
	}

	list, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Alpha" || list[1].Title != "Beta" {
		t.Fatalf("List: unexpected result: %+v", list)
	}

	got, err := repo.GetByID(ctx, tx, created[1].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Beta" {
		t.Fatalf("GetByID: expected Beta, got %q", got.Title)
	}
}

func TestPacketRepoGetMissing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPacketRepo(db, testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), nil, 9999)
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	_, err = repo.GetWithSections(context.Background(), nil, 9999)
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("GetWithSections: expected ErrNotFound, got %v", err)
	}
}

func TestPacketRepoListEmpty(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPacketRepo(db, testutil.Logger(t))

	list, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("List: expected empty non-nil slice, got %#v", list)
	}
}

func TestGetWithSectionsOrdersByOrderThenID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewPacketRepo(db, testutil.Logger(t))
	p := testutil.SeedPacket(t, ctx, tx, "Ordered")
	other := testutil.SeedPacket(t, ctx, tx, "Other")

	third := testutil.SeedSection(t, ctx, tx, p.ID, "third", 2, types.TextPayload{Text: "c"})
	first := testutil.SeedSection(t, ctx, tx, p.ID, "first", 0, types.SummaryPayload{Text: "a"})
	tieA := testutil.SeedSection(t, ctx, tx, p.ID, "tie-a", 1, types.GalleryPayload{Images: []string{"x.png"}})
	tieB := testutil.SeedSection(t, ctx, tx, p.ID, "tie-b", 1, types.TablePayload{Headers: []string{"h"}})
	testutil.SeedSection(t, ctx, tx, other.ID, "foreign", 0, types.TextPayload{Text: "z"})

	got, err := repo.GetWithSections(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("GetWithSections: %v", err)
	}
	want := []uint{first.ID, tieA.ID, tieB.ID, third.ID}
	if len(got.Sections) != len(want) {
		t.Fatalf("GetWithSections: expected %d sections, got %d", len(want), len(got.Sections))
	}
	for i, s := range got.Sections {
		if s.ID != want[i] {
			t.Fatalf("GetWithSections: position %d expected id %d, got %d", i, want[i], s.ID)
		}
		if s.PacketID != p.ID {
			t.Fatalf("GetWithSections: section %d belongs to packet %d", s.ID, s.PacketID)
		}
	}
}

func TestGetWithSectionsEmpty(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	repo := NewPacketRepo(db, testutil.Logger(t))
	p := testutil.SeedPacket(t, ctx, db, "Empty")

	got, err := repo.GetWithSections(ctx, nil, p.ID)
	if err != nil {
		t.Fatalf("GetWithSections: %v", err)
	}
	if got.Sections == nil || len(got.Sections) != 0 {
		t.Fatalf("GetWithSections: expected empty sections, got %#v", got.Sections)
	}
}
