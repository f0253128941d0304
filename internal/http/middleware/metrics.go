package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/observability"
)

const unmatchedRoute = "unmatched"

// Metrics feeds request counts and latency into m. Diagnostics reads the
// same counters, so it is installed whether or not exposition is enabled.
// Routes are labelled by template so ids do not explode cardinality.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		m.ApiInflightInc()
		start := time.Now()
		defer func() {
			m.ApiInflightDec()
			route := c.FullPath()
			if route == "" {
				route = unmatchedRoute
			}
			m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
		}()
		c.Next()
	}
}
