package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/support371/Asset-Packet/internal/data/db"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, db.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, []string{"super_admin", "admin"}, cfg.AdminRoles)
	require.Equal(t, 30*time.Second, cfg.PacketCacheTTL())
	require.False(t, cfg.SeedOnStart)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
version: "2.0.0"
database:
  driver: sqlite
  sqlite_path: /tmp/ap.db
admin_roles: [root]
seed_on_start: true
otel:
  enabled: true
  headers: "x-key=abc"
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9100")
	t.Setenv("ADMIN_ROLES", "ops, admin")
	t.Setenv("PACKET_CACHE_TTL_SECONDS", "5")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.Port)
	require.Equal(t, "2.0.0", cfg.Version)
	require.Equal(t, []string{"ops", "admin"}, cfg.AdminRoles)
	require.True(t, cfg.SeedOnStart)
	require.Equal(t, 5*time.Second, cfg.PacketCacheTTL())

	dbCfg := cfg.DB()
	require.Equal(t, db.DriverSQLite, dbCfg.Driver)
	require.Equal(t, "/tmp/ap.db", dbCfg.SQLitePath)

	otelCfg := cfg.OtelConfig()
	require.True(t, otelCfg.Enabled)
	require.Equal(t, "2.0.0", otelCfg.Version)
	require.Equal(t, map[string]string{"x-key": "abc"}, otelCfg.Headers)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := LoadConfig(logger.Nop())
	require.Error(t, err)

	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadConfig(logger.Nop())
	require.Error(t, err)
}
