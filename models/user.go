// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- roles -----------------------

// Role gates which administrative sections a principal may use.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleLecturer   Role = "lecturer"
	RoleStudent    Role = "student"
	RoleLaboran    Role = "laboran"
)

// AllRoles lists the closed role set, most privileged first.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleLecturer, RoleLaboran, RoleStudent}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ----------------------- user model -----------------------

// User is an account record. Password is kept as entered.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Public returns a copy of u without its credential, for responses.
func (u User) Public() User {
	u.Password = ""
	return u
}

// DefaultAvatarURL is assigned to accounts saved without an avatar.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&q=80&w=100"
