// Package services file: services/storage.go
package services

import (
	"sync"

	"github.com/gin-contrib/sessions"
)

// Keys of the persisted per-browser client state.
const (
	CurrentUserKey = "currentUser"
	LanguageKey    = "language"
	LoggingOutKey  = "loggingOut"
)

// Storage is per-browser persistent key/value state. Values are opaque strings.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryStorage keeps values in a map. Used for tests and tools.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// SessionStorage persists values in the browser's gin session.
type SessionStorage struct {
	session sessions.Session
}

// NewSessionStorage wraps a request session.
func NewSessionStorage(s sessions.Session) *SessionStorage {
	return &SessionStorage{session: s}
}

func (s *SessionStorage) Get(key string) (string, bool) {
	v, ok := s.session.Get(key).(string)
	return v, ok
}

func (s *SessionStorage) Set(key, value string) error {
	s.session.Set(key, value)
	return s.session.Save()
}

func (s *SessionStorage) Remove(key string) error {
	s.session.Delete(key)
	return s.session.Save()
}
