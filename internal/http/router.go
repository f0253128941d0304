package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/support371/Asset-Packet/internal/http/handlers"
	httpMW "github.com/support371/Asset-Packet/internal/http/middleware"
	"github.com/support371/Asset-Packet/internal/observability"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

var defaultAdminRoles = []string{"super_admin", "admin"}

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler     *httpH.HealthHandler
	PacketHandler     *httpH.PacketHandler
	CollectionHandler *httpH.CollectionHandler
	AdminHandler      *httpH.AdminHandler

	CORSOrigins []string
	// AdminRoles gate both the admin views and packet writes.
	AdminRoles []string

	OtelEnabled     bool
	OtelServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.OtelEnabled {
		r.Use(otelgin.Middleware(cfg.OtelServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware.AttachPrincipal())
	}

	adminRoles := cfg.AdminRoles
	if len(adminRoles) == 0 {
		adminRoles = defaultAdminRoles
	}
	requireAdmin := httpMW.RequireRole(adminRoles...)

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.Health)
		}

		// Packets
		if cfg.PacketHandler != nil {
			api.GET("/packets", cfg.PacketHandler.ListPackets)
			api.GET("/packets/:id", cfg.PacketHandler.GetPacket)
			api.GET("/packets/:id/export", cfg.PacketHandler.ExportPacket)
			api.POST("/packets", requireAdmin, cfg.PacketHandler.CreatePacket)
			api.POST("/packets/:id/sections", requireAdmin, cfg.PacketHandler.CreateSection)
		}

		// Organization collections
		if cfg.CollectionHandler != nil {
			api.GET("/portfolio", cfg.CollectionHandler.ListPortfolio)
			api.GET("/investments", cfg.CollectionHandler.ListInvestments)
			api.GET("/grants", cfg.CollectionHandler.ListGrants)
			api.GET("/communications", cfg.CollectionHandler.ListCommunications)
			api.GET("/teams", cfg.CollectionHandler.ListTeams)
		}
	}

	admin := api.Group("/admin", requireAdmin)
	{
		if cfg.AdminHandler != nil {
			admin.GET("/diagnostics", cfg.AdminHandler.Diagnostics)
			admin.GET("/audit-logs", cfg.AdminHandler.ListAuditLogs)
		}
	}

	return r
}
