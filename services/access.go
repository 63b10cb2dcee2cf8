// Package services file: services/access.go
package services

import "rpe-portal/models"

// Section is an administrative screen of the admin panel.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionStatistics Section = "stats"
	SectionArticles   Section = "articles"
	SectionCurriculum Section = "curriculum"
	SectionLecturers  Section = "lecturers"
	SectionFacilities Section = "facilities"
	SectionUsers      Section = "users"
)

// SectionInfo is one entry of the capability table.
type SectionInfo struct {
	Section      Section       `json:"section"`
	Path         string        `json:"path"`
	LabelID      string        `json:"-"`
	LabelEN      string        `json:"-"`
	AllowedRoles []models.Role `json:"-"`
}

// Label returns the section name in lang.
func (s SectionInfo) Label(lang string) string {
	if lang == LangEN {
		return s.LabelEN
	}
	return s.LabelID
}

var (
	everyone     = []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleLecturer, models.RoleLaboran, models.RoleStudent}
	adminTier    = []models.Role{models.RoleSuperAdmin, models.RoleAdmin}
	academicTier = []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleLecturer}
	facilityTier = []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleLecturer, models.RoleLaboran}
)

// Sections is the capability table in menu order.
var Sections = []SectionInfo{
	{SectionDashboard, "/admin", "Dashboard", "Dashboard", everyone},
	{SectionStatistics, "/admin/stats", "Manajemen Statistik", "Statistics", adminTier},
	{SectionArticles, "/admin/articles", "Manajemen Berita", "News", everyone},
	{SectionCurriculum, "/admin/curriculum", "Manajemen Kurikulum", "Curriculum", academicTier},
	{SectionLecturers, "/admin/lecturers", "Manajemen Dosen", "Lecturers", adminTier},
	{SectionFacilities, "/admin/facilities", "Manajemen Fasilitas", "Facilities", facilityTier},
	{SectionUsers, "/admin/users", "Manajemen User", "Users", adminTier},
}

// CanAccess reports whether role may open section. Unknown sections are closed.
func CanAccess(role models.Role, section Section) bool {
	for _, s := range Sections {
		if s.Section != section {
			continue
		}
		for _, r := range s.AllowedRoles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// VisibleSections filters the menu to the sections role may open.
func VisibleSections(role models.Role) []SectionInfo {
	var out []SectionInfo
	for _, s := range Sections {
		if CanAccess(role, s.Section) {
			out = append(out, s)
		}
	}
	return out
}

// RequireSection is the per-section check each screen runs on its own,
// independent of menu filtering.
func RequireSection(session *SessionStore, section Section) (models.User, error) {
	u, ok := session.Current()
	if !ok || !CanAccess(u.Role, section) {
		return u, ErrAccessDenied
	}
	return u, nil
}

// CanDeleteUser applies the deletion policy for accounts. A super admin
// record is never deletable, whoever asks. Edits to a super admin record are
// limited to super admins by UserManager.Edit, so a lesser actor cannot
// demote the record first.
func CanDeleteUser(actor, target models.User) error {
	if !CanAccess(actor.Role, SectionUsers) {
		return ErrAccessDenied
	}
	if target.Role == models.RoleSuperAdmin {
		return ErrProtectedSuperAdmin
	}
	return nil
}

// CanAssignRole reports whether actor may give an account role.
func CanAssignRole(actor models.User, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	if role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		return ErrRoleNotAssignable
	}
	return nil
}
