// Package controllers file: controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/middleware"
	"rpe-portal/models"
	"rpe-portal/services"
)

type userRequest struct {
	Name      string      `json:"name" binding:"required"`
	Username  string      `json:"username" binding:"required"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role" binding:"required"`
	AvatarURL string      `json:"avatar_url"`
}

func (r userRequest) user(id string) models.User {
	return models.User{ID: id, Name: r.Name, Username: r.Username, Password: r.Password, Role: r.Role, AvatarURL: r.AvatarURL}
}

func publicUsers(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// ListUsers returns every account without credentials.
func (p *Portal) ListUsers(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionUsers); !ok {
		return
	}
	c.JSON(http.StatusOK, publicUsers(p.Users.Directory.List()))
}

// CreateUser adds an account. A password is required.
func (p *Portal) CreateUser(c *gin.Context) {
	actor, ok := requireSection(c, services.SectionUsers)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := p.Users.Create(actor, req.user(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u.Public())
}

// UpdateUser edits an account. An empty password keeps the current one; the
// acting browser sees its own edits at once.
func (p *Portal) UpdateUser(c *gin.Context) {
	actor, ok := requireSection(c, services.SectionUsers)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := p.Users.Edit(actor, req.user(c.Param("id")), middleware.Session(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

// DeleteUser removes an account unless the deletion policy blocks it.
func (p *Portal) DeleteUser(c *gin.Context) {
	actor, ok := requireSection(c, services.SectionUsers)
	if !ok {
		return
	}
	if err := p.Users.Delete(actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
