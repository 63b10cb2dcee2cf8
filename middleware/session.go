// Package middleware file: middleware/session.go
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"rpe-portal/services"
)

// Context keys set by PortalSession.
const (
	lifecycleKey = "portal.lifecycle"
	languageKey  = "portal.language"
)

// PortalSession binds the browser's gin session to a session store, a
// lifecycle and a language store for the rest of the request chain.
// The sessions middleware must run first.
func PortalSession(dir *services.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		storage := services.NewSessionStorage(sessions.Default(c))
		store := services.NewSessionStore(dir, storage)
		c.Set(lifecycleKey, services.NewLifecycle(store, storage))
		c.Set(languageKey, services.NewLanguageStore(storage))
		c.Next()
	}
}

// Lifecycle returns the lifecycle bound by PortalSession.
func Lifecycle(c *gin.Context) *services.Lifecycle {
	return c.MustGet(lifecycleKey).(*services.Lifecycle)
}

// Session returns the session store bound by PortalSession.
func Session(c *gin.Context) *services.SessionStore {
	return Lifecycle(c).Session()
}

// Language returns the language store bound by PortalSession.
func Language(c *gin.Context) *services.LanguageStore {
	return c.MustGet(languageKey).(*services.LanguageStore)
}
