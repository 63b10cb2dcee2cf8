// Package services file: services/chat_service.go
package services

import (
	"context"
	"strings"

	"rpe-portal/logger"
	"rpe-portal/models"
)

// Persona is the fixed system instruction of the portal assistant.
const Persona = "Anda adalah RPE Bot, asisten virtual cerdas untuk Program Studi Teknologi Rekayasa Pembangkit Energi (RPE) Politeknik Negeri Batam. Tugas anda adalah menjawab pertanyaan mahasiswa dan calon mahasiswa mengenai kurikulum, dosen, fasilitas, berita, dan pendaftaran. Gunakan Bahasa Indonesia yang sopan, formal namun ramah. Jika informasi tidak tersedia, sarankan untuk menghubungi kontak prodi."

// Canned replies.
const (
	EmptyReply       = "Maaf, tidak ada respon."
	UnavailableReply = "Maaf, saat ini layanan AI sedang sibuk. Mohon coba beberapa saat lagi."
)

// Generator is the external text generation collaborator.
type Generator interface {
	Generate(ctx context.Context, persona string, turns []models.ChatTurn) (string, error)
}

// ChatService relays a conversation to a Generator.
type ChatService struct {
	gen Generator
}

// NewChatService wraps gen. A nil generator always answers UnavailableReply.
func NewChatService(gen Generator) *ChatService {
	return &ChatService{gen: gen}
}

// Reply sends history plus message and returns the text to show. It never
// fails: a service error becomes UnavailableReply.
func (s *ChatService) Reply(ctx context.Context, history []models.ChatTurn, message string) string {
	if s.gen == nil {
		logger.Warn.Println("[ChatService.Reply] No generator configured")
		return UnavailableReply
	}
	turns := make([]models.ChatTurn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, models.ChatTurn{Role: models.ChatRoleUser, Text: message})

	text, err := s.gen.Generate(ctx, Persona, turns)
	if err != nil {
		logger.Error.Printf("[ChatService.Reply] Generator error: %v", err)
		return UnavailableReply
	}
	if strings.TrimSpace(text) == "" {
		return EmptyReply
	}
	return text
}
