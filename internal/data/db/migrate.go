package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsurePacketIndexes adds the reading-order index used by section
// lookups. AutoMigrate creates it from struct tags on fresh databases;
// this covers tables created before the tag existed.
func EnsurePacketIndexes(db *gorm.DB) error {
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_sections_packet_order ON sections (packet_id, "order", id);`).Error; err != nil {
		return fmt.Errorf("create idx_sections_packet_order: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_audit_logs_org_created ON audit_logs (organization_id, created_at DESC);`).Error; err != nil {
		return fmt.Errorf("create idx_audit_logs_org_created: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...", "driver", s.driver)
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsurePacketIndexes(s.db); err != nil {
		s.log.Error("Packet index migration failed", "error", err)
		return err
	}
	return nil
}
