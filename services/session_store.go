// Package services file: services/session_store.go
package services

import (
	"encoding/json"

	"rpe-portal/logger"
	"rpe-portal/models"
)

// SessionStore tracks the authenticated principal of one browser and mirrors
// it to that browser's Storage.
type SessionStore struct {
	dir     *UserDirectory
	storage Storage
	current *models.User
}

// NewSessionStore restores the principal persisted in storage, if any.
// The stored copy only names the account: the directory's current record
// wins, and an account that no longer exists ends the session.
func NewSessionStore(dir *UserDirectory, storage Storage) *SessionStore {
	s := &SessionStore{dir: dir, storage: storage}
	raw, ok := storage.Get(CurrentUserKey)
	if !ok || raw == "" {
		return s
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		logger.Warn.Printf("[NewSessionStore] Discarding unreadable stored principal: %v", err)
		_ = storage.Remove(CurrentUserKey)
		return s
	}
	live, ok := dir.Get(u.ID)
	if !ok {
		logger.Warn.Printf("[NewSessionStore] Stored principal %q no longer exists, signing out", u.Username)
		_ = storage.Remove(CurrentUserKey)
		return s
	}
	s.current = &live
	return s
}

// Current returns the principal, if authenticated.
func (s *SessionStore) Current() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Authenticated reports whether a principal is set.
func (s *SessionStore) Authenticated() bool {
	return s.current != nil
}

// Login authenticates against the directory. On failure the previous state
// is left untouched; unknown user and wrong password are not distinguished.
func (s *SessionStore) Login(username, password string) bool {
	u, ok := s.dir.FindByCredentials(username, password)
	if !ok {
		logger.Warn.Printf("[SessionStore.Login] Invalid login attempt for username=%q", username)
		return false
	}
	s.setPrincipal(&u)
	logger.Info.Printf("[SessionStore.Login] User %s authenticated (role=%s)", u.Username, u.Role)
	return true
}

// Logout clears the principal and its persisted copy.
func (s *SessionStore) Logout() {
	if s.current != nil {
		logger.Info.Printf("[SessionStore.Logout] Logging out user %s", s.current.Username)
	}
	s.setPrincipal(nil)
}

// RefreshPrincipal replaces the cached principal when u is the same account.
func (s *SessionStore) RefreshPrincipal(u models.User) {
	if s.current == nil || s.current.ID != u.ID {
		return
	}
	s.setPrincipal(&u)
}

func (s *SessionStore) setPrincipal(u *models.User) {
	s.current = u
	if u == nil {
		if err := s.storage.Remove(CurrentUserKey); err != nil {
			logger.Error.Printf("[SessionStore] Failed to clear stored principal: %v", err)
		}
		return
	}
	// The credential stays server side; only the public view is persisted.
	data, err := json.Marshal(u.Public())
	if err != nil {
		logger.Error.Printf("[SessionStore] Failed to encode principal: %v", err)
		return
	}
	if err := s.storage.Set(CurrentUserKey, string(data)); err != nil {
		logger.Error.Printf("[SessionStore] Failed to persist principal: %v", err)
	}
}
