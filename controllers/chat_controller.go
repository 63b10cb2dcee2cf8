// Package controllers file: controllers/chat_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/models"
)

type chatRequest struct {
	History []models.ChatTurn `json:"history" binding:"omitempty,dive"`
	Message string            `json:"message" binding:"required"`
}

// Chat relays a conversation to the assistant. The reply is always 200:
// service failures come back as a canned apology.
func (p *Portal) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	reply := p.Assistant.Reply(c.Request.Context(), req.History, req.Message)
	c.JSON(http.StatusOK, gin.H{"role": models.ChatRoleModel, "text": reply})
}
