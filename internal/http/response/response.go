package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/platform/apierr"
	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

// APIError is the body of every non-2xx JSON response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, APIError{Message: msg, Code: code})
}

// RespondAPIError classifies err and writes it. Server errors are logged
// with the underlying cause, which is never sent to the client.
func RespondAPIError(c *gin.Context, log *logger.Logger, err error) {
	ae := apierr.From(err)
	if ae.Status >= http.StatusInternalServerError && log != nil {
		fields := append([]interface{}{"path", c.FullPath(), "error", err}, ctxutil.LogFields(c.Request.Context())...)
		log.Error("request failed", fields...)
	}
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
