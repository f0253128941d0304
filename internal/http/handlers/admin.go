package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/http/response"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

const maxAuditLimit = 500

type AdminHandler struct {
	log         *logger.Logger
	audit       services.AuditService
	diagnostics services.DiagnosticsService
}

func NewAdminHandler(log *logger.Logger, audit services.AuditService, diagnostics services.DiagnosticsService) *AdminHandler {
	return &AdminHandler{
		log:         log.With("handler", "AdminHandler"),
		audit:       audit,
		diagnostics: diagnostics,
	}
}

// GET /api/admin/diagnostics
func (h *AdminHandler) Diagnostics(c *gin.Context) {
	response.RespondOK(c, h.diagnostics.Snapshot())
}

// GET /api/admin/audit-logs?orgId=&limit=
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	rows, err := h.audit.List(dbctx.New(c.Request.Context()), orgID, limit)
	respondList(c, h.log, "audit_logs", orgID, rows, err)
}
