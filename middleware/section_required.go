// Package middleware file: middleware/section_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/logger"
	"rpe-portal/services"
)

// SectionRequired blocks principals whose role may not open section.
// Handlers re-check on their own; this only keeps the route table honest.
func SectionRequired(section services.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := services.RequireSection(Session(c), section)
		if err != nil {
			logger.Warn.Printf("[SectionRequired] %q (role=%s) denied section %s", u.Username, u.Role, section)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied", "section": section})
			return
		}
		c.Next()
	}
}
