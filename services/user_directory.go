// Package services file: services/user_directory.go
package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"rpe-portal/models"
)

// PrincipalCache is refreshed when the account it caches is edited.
type PrincipalCache interface {
	RefreshPrincipal(u models.User)
}

// UserDirectory is a plain store of accounts. Policy lives in UserManager.
// Usernames are not required to be unique; lookups take the first match.
type UserDirectory struct {
	users *Collection[models.User]
}

// NewUserDirectory seeds a directory in the given order.
func NewUserDirectory(seed []models.User) *UserDirectory {
	return &UserDirectory{
		users: NewCollection(UserCollection, func(u models.User) string { return u.ID }, Append, seed),
	}
}

// List returns every account in directory order.
func (d *UserDirectory) List() []models.User { return d.users.List() }

// Get finds an account by id.
func (d *UserDirectory) Get(id string) (models.User, bool) { return d.users.Get(id) }

// Add appends u. The caller supplies a unique id.
func (d *UserDirectory) Add(u models.User) error { return d.users.Add(u) }

// Update replaces the account with u.ID and, in the same call, refreshes the
// active principal when it is that account. A missing id is a no-op.
func (d *UserDirectory) Update(u models.User, active PrincipalCache) bool {
	if !d.users.Update(u) {
		return false
	}
	if active != nil {
		active.RefreshPrincipal(u)
	}
	return true
}

// Delete removes the account unconditionally. A missing id is a no-op.
func (d *UserDirectory) Delete(id string) bool { return d.users.Delete(id) }

// Observable exposes the directory to change subscribers.
func (d *UserDirectory) Observable() Observable { return d.users }

// FindByCredentials returns the first account whose username matches
// case-insensitively and whose stored credential accepts password.
func (d *UserDirectory) FindByCredentials(username, password string) (models.User, bool) {
	for _, u := range d.users.List() {
		if strings.EqualFold(u.Username, username) && credentialsMatch(u.Password, password) {
			return u, true
		}
	}
	return models.User{}, false
}

// credentialsMatch compares exactly, unless the stored value is a bcrypt hash.
func credentialsMatch(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
