package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultOrganizationID uint = 1

// orgIDFromQuery reads ?orgId=, falling back to the default organization
// when it is missing or not a positive integer.
func orgIDFromQuery(c *gin.Context) uint {
	raw := strings.TrimSpace(c.Query("orgId"))
	if raw == "" {
		return defaultOrganizationID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return defaultOrganizationID
	}
	return uint(id)
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
