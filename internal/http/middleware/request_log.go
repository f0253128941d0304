package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

// quietRoutes are liveness probes; successful hits log at debug.
var quietRoutes = map[string]bool{
	"/healthcheck": true,
	"/api/health":  true,
}

// RequestLogger writes one access line per request, leveled by status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "access")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx := c.Request.Context()

		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		fields = append(fields, ctxutil.LogFields(ctx)...)
		if p := ctxutil.GetPrincipal(ctx); p != nil {
			fields = append(fields, "subject", p.Subject, "role", p.Role)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		case quietRoutes[route]:
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
