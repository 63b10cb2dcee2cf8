// Package services file: services/user_manager.go
package services

import (
	"github.com/pkg/errors"
	"rpe-portal/logger"
	"rpe-portal/models"
)

// UserManager applies account management policy on top of a UserDirectory.
type UserManager struct {
	Directory *UserDirectory
}

// NewUserManager wraps dir.
func NewUserManager(dir *UserDirectory) *UserManager {
	return &UserManager{Directory: dir}
}

// Create adds a new account on behalf of actor.
func (m *UserManager) Create(actor models.User, u models.User) (models.User, error) {
	if err := CanAssignRole(actor, u.Role); err != nil {
		return models.User{}, err
	}
	if u.Password == "" {
		return models.User{}, ErrPasswordRequired
	}
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.AvatarURL == "" {
		u.AvatarURL = models.DefaultAvatarURL
	}
	if err := m.Directory.Add(u); err != nil {
		return models.User{}, err
	}
	logger.Info.Printf("[UserManager.Create] %s created user %s (role=%s)", actor.Username, u.Username, u.Role)
	return u, nil
}

// Edit replaces an existing account. An empty password keeps the stored one.
// Only a super admin may edit a super admin account, so the record cannot be
// demoted and then deleted by a lesser actor.
// The active session, if it is the edited account, sees the new record.
func (m *UserManager) Edit(actor models.User, u models.User, active PrincipalCache) (models.User, error) {
	existing, ok := m.Directory.Get(u.ID)
	if !ok {
		return models.User{}, errors.Wrapf(ErrNotFound, "user %q", u.ID)
	}
	if existing.Role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		logger.Warn.Printf("[UserManager.Edit] %s blocked from editing super admin %s", actor.Username, existing.Username)
		return models.User{}, ErrSuperAdminOnly
	}
	if u.Role != existing.Role {
		if err := CanAssignRole(actor, u.Role); err != nil {
			return models.User{}, err
		}
	}
	if u.Password == "" {
		u.Password = existing.Password
	}
	if u.AvatarURL == "" {
		u.AvatarURL = models.DefaultAvatarURL
	}
	m.Directory.Update(u, active)
	logger.Info.Printf("[UserManager.Edit] %s updated user %s", actor.Username, u.Username)
	return u, nil
}

// Delete removes an account after the deletion policy has accepted it.
// The policy runs before the directory is touched.
func (m *UserManager) Delete(actor models.User, id string) error {
	target, ok := m.Directory.Get(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "user %q", id)
	}
	if err := CanDeleteUser(actor, target); err != nil {
		logger.Warn.Printf("[UserManager.Delete] %s blocked from deleting %s: %v", actor.Username, target.Username, err)
		return err
	}
	m.Directory.Delete(id)
	logger.Info.Printf("[UserManager.Delete] %s deleted user %s", actor.Username, target.Username)
	return nil
}
