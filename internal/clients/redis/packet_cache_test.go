package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func TestPacketKey(t *testing.T) {
	require.Equal(t, "packet:42:v3", PacketKey(42, 3))
	require.Equal(t, "packet:42:v", PacketVersionKey(42))
}

func TestNewClientRequiresAddr(t *testing.T) {
	_, err := NewClient(Config{}, logger.Nop())
	require.Error(t, err)
	_, err = NewClient(Config{Addr: "localhost:6379"}, nil)
	require.Error(t, err)
}

func TestPacketCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	rdb, err := NewClient(Config{Addr: addr}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	cache := NewPacketCache(rdb, time.Minute, logger.Nop())
	id := uint(time.Now().UnixNano() % 1_000_000_000)
	t.Cleanup(func() { _ = rdb.Del(ctx, PacketVersionKey(id)).Err() })

	v0, err := cache.Version(ctx, id)
	require.NoError(t, err)
	require.Zero(t, v0)
	_, ok, err := cache.Get(ctx, id, v0)
	require.NoError(t, err)
	require.False(t, ok)

	sec, err := types.NewSection(id, "Gallery", 0, types.GalleryPayload{Images: []string{"a.png"}})
	require.NoError(t, err)
	sec.ID = 7
	want := &types.PacketWithSections{
		Packet:   types.Packet{ID: id, Title: "Cached", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		Sections: []*types.Section{sec},
	}
	require.NoError(t, cache.Set(ctx, v0, want))

	got, ok, err := cache.Get(ctx, id, v0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want.Title, got.Title)
	require.Len(t, got.Sections, 1)
	require.JSONEq(t, string(want.Sections[0].Data), string(got.Sections[0].Data))

	require.NoError(t, cache.Invalidate(ctx, id))
	v1, err := cache.Version(ctx, id)
	require.NoError(t, err)
	require.Equal(t, v0+1, v1)
	_, ok, err = cache.Get(ctx, id, v1)
	require.NoError(t, err)
	require.False(t, ok)

	// A write from a read that started before the bump stays invisible.
	require.NoError(t, cache.Set(ctx, v0, want))
	_, ok, err = cache.Get(ctx, id, v1)
	require.NoError(t, err)
	require.False(t, ok)
	t.Cleanup(func() { _ = rdb.Del(ctx, PacketKey(id, v0), PacketKey(id, v1)).Err() })
}
