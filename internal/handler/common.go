package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-api/internal/middleware"
)

// getIdentity extracts the authenticated identity from the request context
func getIdentity(c *gin.Context) (middleware.Identity, bool) {
	return middleware.GetIdentity(c)
}

// parseIDParam parses an integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
