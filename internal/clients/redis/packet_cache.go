package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

// PacketCache stores aggregated packets under a per-packet version.
// Invalidate bumps the version, so an entry written from a read that
// started before the bump lands under a key no reader looks up again.
// A miss is reported as (nil, false, nil).
type PacketCache interface {
	Version(ctx context.Context, id uint) (int64, error)
	Get(ctx context.Context, id uint, version int64) (*types.PacketWithSections, bool, error)
	Set(ctx context.Context, version int64, p *types.PacketWithSections) error
	Invalidate(ctx context.Context, id uint) error
}

type packetCache struct {
	log        *logger.Logger
	rdb        goredis.Cmdable
	ttl        time.Duration
	versionTTL time.Duration
}

func NewPacketCache(rdb goredis.Cmdable, ttl time.Duration, log *logger.Logger) PacketCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	// The version key must outlive every entry written under it.
	versionTTL := 24 * time.Hour
	if 10*ttl > versionTTL {
		versionTTL = 10 * ttl
	}
	return &packetCache{
		log:        log.With("service", "RedisPacketCache"),
		rdb:        rdb,
		ttl:        ttl,
		versionTTL: versionTTL,
	}
}

func PacketKey(id uint, version int64) string {
	return fmt.Sprintf("packet:%d:v%d", id, version)
}

func PacketVersionKey(id uint) string {
	return fmt.Sprintf("packet:%d:v", id)
}

func (c *packetCache) Version(ctx context.Context, id uint) (int64, error) {
	v, err := c.rdb.Get(ctx, PacketVersionKey(id)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *packetCache) Get(ctx context.Context, id uint, version int64) (*types.PacketWithSections, bool, error) {
	key := PacketKey(id, version)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p types.PacketWithSections
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn("bad cached packet payload", "packet_id", id, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false, nil
	}
	if p.Sections == nil {
		p.Sections = []*types.Section{}
	}
	return &p, true, nil
}

func (c *packetCache) Set(ctx context.Context, version int64, p *types.PacketWithSections) error {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, PacketKey(p.ID, version), raw, c.ttl).Err()
}

func (c *packetCache) Invalidate(ctx context.Context, id uint) error {
	key := PacketVersionKey(id)
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, c.versionTTL)
	_, err := pipe.Exec(ctx)
	return err
}
