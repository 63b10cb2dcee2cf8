// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/middleware"
	"rpe-portal/services"
)

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ------------------ login handling ------------------

// Login authenticates the browser. Unknown users and wrong passwords get the
// same answer.
func (p *Portal) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lc := middleware.Lifecycle(c)
	if !lc.Login(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	u, _ := lc.Session().Current()
	c.JSON(http.StatusOK, gin.H{"user": u.Public(), "redirect": services.AdminHomePath})
}

// Logout clears the principal and tells the client where to go: always the
// public home, never the login page.
func (p *Portal) Logout(c *gin.Context) {
	dest := middleware.Lifecycle(c).Logout()
	c.JSON(http.StatusOK, gin.H{"redirect": dest})
}

// Me returns the principal of this browser.
func (p *Portal) Me(c *gin.Context) {
	u, ok := middleware.Session(c).Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}
