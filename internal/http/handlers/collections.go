package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/http/response"
	"github.com/support371/Asset-Packet/internal/pkg/dbctx"
	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

// CollectionHandler serves the per-organization read views. A failing
// store is logged and answered with an empty list so dashboards keep
// rendering.
type CollectionHandler struct {
	log       *logger.Logger
	portfolio services.PortfolioService
	comms     services.CommunicationService
	teams     services.TeamService
}

func NewCollectionHandler(
	log *logger.Logger,
	portfolio services.PortfolioService,
	comms services.CommunicationService,
	teams services.TeamService,
) *CollectionHandler {
	return &CollectionHandler{
		log:       log.With("handler", "CollectionHandler"),
		portfolio: portfolio,
		comms:     comms,
		teams:     teams,
	}
}

// GET /api/portfolio
func (h *CollectionHandler) ListPortfolio(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	rows, err := h.portfolio.ListPortfolios(dbctx.New(c.Request.Context()), orgID)
	respondList(c, h.log, "portfolio", orgID, rows, err)
}

// GET /api/investments
func (h *CollectionHandler) ListInvestments(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	rows, err := h.portfolio.ListInvestments(dbctx.New(c.Request.Context()), orgID)
	respondList(c, h.log, "investments", orgID, rows, err)
}

// GET /api/grants
func (h *CollectionHandler) ListGrants(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	rows, err := h.portfolio.ListGrants(dbctx.New(c.Request.Context()), orgID)
	respondList(c, h.log, "grants", orgID, rows, err)
}

// GET /api/communications
func (h *CollectionHandler) ListCommunications(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	rows, err := h.comms.List(dbctx.New(c.Request.Context()), orgID)
	respondList(c, h.log, "communications", orgID, rows, err)
}

// GET /api/teams
func (h *CollectionHandler) ListTeams(c *gin.Context) {
	orgID := orgIDFromQuery(c)
	rows, err := h.teams.ListWithMembers(dbctx.New(c.Request.Context()), orgID)
	respondList(c, h.log, "teams", orgID, rows, err)
}

func respondList[T any](c *gin.Context, log *logger.Logger, collection string, orgID uint, rows []T, err error) {
	if err != nil {
		fields := append([]interface{}{"collection", collection, "org_id", orgID, "error", err}, ctxutil.LogFields(c.Request.Context())...)
		log.Error("collection read failed", fields...)
		response.RespondOK(c, []T{})
		return
	}
	if rows == nil {
		rows = []T{}
	}
	response.RespondOK(c, rows)
}
