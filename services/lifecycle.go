// Package services file: services/lifecycle.go
package services

import "rpe-portal/logger"

// Destinations of the admin shell.
const (
	HomePath      = "/"
	LoginPath     = "/admin/login"
	AdminHomePath = "/admin"
)

// SessionState is the position of a browser in the session lifecycle.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
	StateLoggingOut      SessionState = "logging_out"
)

// Lifecycle drives login, logout and the redirect guard of the admin shell.
//
// The LoggingOut flag separates "not authenticated" from "should be sent to
// the login page": a guard that runs after the principal is cleared but
// before the browser reaches the public site sends it home instead.
type Lifecycle struct {
	session *SessionStore
	storage Storage
}

// NewLifecycle binds a lifecycle to one browser's session and storage.
func NewLifecycle(session *SessionStore, storage Storage) *Lifecycle {
	return &Lifecycle{session: session, storage: storage}
}

// Session returns the underlying session store.
func (l *Lifecycle) Session() *SessionStore { return l.session }

// State reports the current lifecycle state.
func (l *Lifecycle) State() SessionState {
	if l.session.Authenticated() {
		return StateAuthenticated
	}
	if l.loggingOut() {
		return StateLoggingOut
	}
	return StateUnauthenticated
}

// Login authenticates and, on success, drops any stale logout flag.
func (l *Lifecycle) Login(username, password string) bool {
	if !l.session.Login(username, password) {
		return false
	}
	l.clearLoggingOut()
	return true
}

// Logout raises the flag before clearing the principal and returns the
// public home destination.
func (l *Lifecycle) Logout() string {
	if err := l.storage.Set(LoggingOutKey, "1"); err != nil {
		logger.Error.Printf("[Lifecycle.Logout] Failed to persist logout flag: %v", err)
	}
	l.session.Logout()
	return HomePath
}

// Guard is the redirect effect of the admin shell. It returns the
// destination and true when the browser must leave the admin area.
// A pending logout is consumed here and resolves to the public home.
func (l *Lifecycle) Guard() (string, bool) {
	switch l.State() {
	case StateAuthenticated:
		return "", false
	case StateLoggingOut:
		l.clearLoggingOut()
		return HomePath, true
	default:
		return LoginPath, true
	}
}

// ReachedPublicSite ends a pending logout once the browser has been served a
// page outside the admin area. The flag only bridges the gap between logout
// and that navigation; later admin visits go to the login page again.
func (l *Lifecycle) ReachedPublicSite() {
	l.clearLoggingOut()
}

func (l *Lifecycle) loggingOut() bool {
	v, ok := l.storage.Get(LoggingOutKey)
	return ok && v != ""
}

func (l *Lifecycle) clearLoggingOut() {
	if !l.loggingOut() {
		return
	}
	if err := l.storage.Remove(LoggingOutKey); err != nil {
		logger.Error.Printf("[Lifecycle] Failed to clear logout flag: %v", err)
	}
}
