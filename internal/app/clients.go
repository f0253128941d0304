package app

import (
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/support371/Asset-Packet/internal/clients/redis"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type Clients struct {
	Redis       *goredis.Client
	PacketCache redis.PacketCache
}

// wireClients connects optional backing services. Without REDIS_ADDR the
// packet cache stays nil and every read goes to the store.
func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Info("REDIS_ADDR not set; packet cache disabled")
		return Clients{}, nil
	}
	rdb, err := redis.NewClient(redis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}
	return Clients{
		Redis:       rdb,
		PacketCache: redis.NewPacketCache(rdb, cfg.PacketCacheTTL(), log),
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
