package app

import (
	"github.com/support371/Asset-Packet/internal/http"
	httpH "github.com/support371/Asset-Packet/internal/http/handlers"
	httpMW "github.com/support371/Asset-Packet/internal/http/middleware"
	"github.com/support371/Asset-Packet/internal/observability"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Packet     *httpH.PacketHandler
	Collection *httpH.CollectionHandler
	Admin      *httpH.AdminHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(cfg.Version),
		Packet:     httpH.NewPacketHandler(log, services.Packet),
		Collection: httpH.NewCollectionHandler(log, services.Portfolio, services.Communication, services.Team),
		Admin:      httpH.NewAdminHandler(log, services.Audit, services.Diagnostics),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		AuthMiddleware:    middleware.Auth,
		HealthHandler:     handlers.Health,
		PacketHandler:     handlers.Packet,
		CollectionHandler: handlers.Collection,
		AdminHandler:      handlers.Admin,
		CORSOrigins:       cfg.CORSAllowOrigins,
		AdminRoles:        cfg.AdminRoles,
		OtelEnabled:       cfg.Otel.Enabled,
		OtelServiceName:   cfg.Otel.ServiceName,
	})
}
