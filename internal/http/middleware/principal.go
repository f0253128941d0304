package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/http/response"
	"github.com/support371/Asset-Packet/internal/platform/apierr"
	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

const (
	headerUserRole = "X-User-Role"
	headerUserID   = "X-User-Id"
	headerOrgID    = "X-Org-Id"
)

var errForbidden = apierr.Forbidden("Forbidden")

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// AttachPrincipal resolves the caller identity and stores it in the
// request context. It never rejects a request: routes that need a role
// are guarded by RequireRole.
func (am *AuthMiddleware) AttachPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if am.authService.Mode() == services.AuthModeHeader {
			ctx = am.authService.SetContextFromHeaders(ctx, c.GetHeader(headerUserRole), c.GetHeader(headerUserID), c.GetHeader(headerOrgID))
		} else if tokenString := extractBearer(c); tokenString != "" {
			withPrincipal, err := am.authService.SetContextFromToken(ctx, tokenString)
			if err != nil {
				am.log.Debug("Ignoring unusable bearer token", append([]interface{}{"error", err}, ctxutil.LogFields(ctx)...)...)
			} else {
				ctx = withPrincipal
			}
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the context principal holds one of
// roles. A request without a principal has no role.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := ctxutil.GetPrincipal(c.Request.Context())
		if !p.HasRole(roles...) {
			response.RespondAPIError(c, nil, errForbidden)
			return
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
