// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"rpe-portal/logger"
	"rpe-portal/middleware"
	"rpe-portal/services"
)

// Health answers load balancer health checks.
func Health(c *gin.Context) {
	logger.Debug.Println("[Health] Health check requested")
	c.String(http.StatusOK, "OK")
}

// Status is a fixed placeholder. It performs no storage check.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "online", "db": "disconnected (mock mode)"})
}

// SPA serves files from dir and falls back to index.html for every other
// non-API path, so client routes survive a reload. Admin pages other than
// the login page go through the session guard first.
func SPA(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		p := path.Clean("/" + c.Request.URL.Path)
		if strings.HasPrefix(p, "/api/") || p == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found", "back": services.HomePath})
			return
		}
		lifecycle := middleware.Lifecycle(c)
		if isGuardedPage(p) {
			if dest, leave := lifecycle.Guard(); leave {
				c.Redirect(http.StatusFound, dest)
				return
			}
		} else {
			lifecycle.ReachedPublicSite()
		}

		file := filepath.Join(dir, filepath.FromSlash(p))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	}
}

func isGuardedPage(p string) bool {
	if p == services.LoginPath {
		return false
	}
	return p == services.AdminHomePath || strings.HasPrefix(p, services.AdminHomePath+"/")
}

// ArticleQRCode renders a PNG QR code linking to a news article.
func (p *Portal) ArticleQRCode(c *gin.Context) {
	item, ok := p.Content.News.Get(c.Param("id"))
	if !ok {
		respondError(c, services.ErrNotFound)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil || size > 1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be a number up to 1024"})
		return
	}

	png, err := services.GenerateQRCode(services.ArticleShareURL(p.ApplicationURL, item.ID), size, nil)
	if err != nil {
		logger.Error.Printf("[ArticleQRCode] Error generating QR code: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "inline; filename=\"news-"+item.ID+".png\"")
	c.Data(http.StatusOK, "image/png", png)
}
