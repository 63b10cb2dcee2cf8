// Package models file: models/site.go
package models

// Statistics holds the four homepage counters. It is replaced wholesale.
type Statistics struct {
	Students   string `json:"students" binding:"required"`
	Courses    string `json:"courses" binding:"required"`
	Awards     string `json:"awards" binding:"required"`
	Employment string `json:"employment" binding:"required"`
}

// CurriculumFile is the uploaded curriculum document.
type CurriculumFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Date string `json:"date"`
}

// Chat roles.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatTurn is one message of an assistant conversation.
type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text"`
}
