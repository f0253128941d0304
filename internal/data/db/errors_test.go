package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func TestIsForeignKeyViolation(t *testing.T) {
	require.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated)))
	require.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	require.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	require.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsForeignKeyViolation(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: organizations.slug")))
	require.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, "a.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("a.db"))
	require.Equal(t, "file:x?mode=memory&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:x?mode=memory"))
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{PostgresUser: "u", PostgresPassword: "p", PostgresHost: "h", PostgresPort: "5432", PostgresName: "n"}
	require.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.PostgresDSN())
}

func TestOpenSQLiteMigrates(t *testing.T) {
	svc, err := Open(Config{Driver: DriverSQLite, SQLitePath: "file:migrate_test?mode=memory&cache=shared"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	require.Equal(t, DriverSQLite, svc.Driver())
	require.NoError(t, svc.AutoMigrateAll())
	require.True(t, svc.DB().Migrator().HasTable("sections"))
	require.True(t, svc.DB().Migrator().HasTable("packets"))

	_, err = Open(Config{Driver: "oracle"}, logger.Nop())
	require.Error(t, err)
}
