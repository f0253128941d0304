package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/observability"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

const systemActor = "system"

type AuditService interface {
	// Record appends an entry inside tx. Actor defaults to the request
	// principal's subject.
	Record(ctx context.Context, tx *gorm.DB, entry *types.AuditLog) error
	List(dbc dbctx.Context, orgID uint, limit int) ([]*types.AuditLog, error)
}

type auditService struct {
	db      *gorm.DB
	log     *logger.Logger
	repo    repos.AuditLogRepo
	metrics *observability.Metrics
}

// NewAuditService builds the audit trail writer. metrics may be nil.
func NewAuditService(db *gorm.DB, baseLog *logger.Logger, repo repos.AuditLogRepo, metrics *observability.Metrics) AuditService {
	return &auditService{
		db:      db,
		log:     baseLog.With("service", "AuditService"),
		repo:    repo,
		metrics: metrics,
	}
}

func (s *auditService) Record(ctx context.Context, tx *gorm.DB, entry *types.AuditLog) error {
	if entry == nil {
		return nil
	}
	p := ctxutil.GetPrincipal(ctx)
	if entry.Actor == "" {
		entry.Actor = systemActor
		if p != nil && p.Subject != "" {
			entry.Actor = p.Subject
		}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if _, err := s.repo.Create(ctx, tx, []*types.AuditLog{entry}); err != nil {
		s.metrics.IncAuditFailure()
		s.log.Warn("Audit write failed", "action", entry.Action, "error", err)
		return fmt.Errorf("audit %s: %w", entry.Action, err)
	}
	return nil
}

func (s *auditService) List(dbc dbctx.Context, orgID uint, limit int) ([]*types.AuditLog, error) {
	return s.repo.ListByOrganization(dbc.Context(), dbc.Tx, orgID, limit)
}
