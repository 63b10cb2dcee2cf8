// Package controllers provides the HTTP handlers of the portal.
// File: controllers/portal.go
package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"rpe-portal/logger"
	"rpe-portal/middleware"
	"rpe-portal/models"
	"rpe-portal/services"
	"rpe-portal/websocket"
)

// Portal holds the shared state every handler works on.
type Portal struct {
	Content        *services.Content
	Users          *services.UserManager
	Normalizer     *services.Normalizer
	Assistant      *services.ChatService
	Hub            *websocket.Hub
	ApplicationURL string
	Now            func() time.Time
}

// NewPortal wires a portal. Now defaults to time.Now.
func NewPortal(content *services.Content, users *services.UserManager, normalizer *services.Normalizer,
	chat *services.ChatService, hub *websocket.Hub, applicationURL string) *Portal {
	return &Portal{
		Content:        content,
		Users:          users,
		Normalizer:     normalizer,
		Assistant:      chat,
		Hub:            hub,
		ApplicationURL: applicationURL,
		Now:            time.Now,
	}
}

// requireSection re-checks section access inside the handler, independent of route
// middleware. It writes the 403 itself.
func requireSection(c *gin.Context, section services.Section) (models.User, bool) {
	u, err := services.RequireSection(middleware.Session(c), section)
	if err != nil {
		logger.Warn.Printf("[requireSection] %q denied section %s on %s", u.Username, section, c.Request.URL.Path)
		respondError(c, err)
		return u, false
	}
	return u, true
}
