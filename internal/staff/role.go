package staff

import (
	"fmt"
	"strings"
)

// Role is a staff member's position in the clinic's training hierarchy.
type Role string

const (
	RoleNewbie Role = "newbie"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

// AllRoles returns every role in ascending order of privilege.
func AllRoles() []Role {
	return []Role{RoleNewbie, RoleMentor, RoleAdmin}
}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q (want newbie, mentor or admin)", s)
	}
	return r, nil
}

// Valid reports whether r is a defined role.
func (r Role) Valid() bool {
	switch r {
	case RoleNewbie, RoleMentor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanWriteProgress reports whether the role may score skill progress for
// any staff member, including themselves.
func (r Role) CanWriteProgress() bool {
	switch r {
	case RoleMentor, RoleAdmin:
		return true
	case RoleNewbie:
		return false
	default:
		return false
	}
}

// CanManageStaff reports whether the role may add staff and rename the clinic.
func (r Role) CanManageStaff() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleNewbie, RoleMentor:
		return false
	default:
		return false
	}
}

// DisplayName returns a human-readable name for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleNewbie:
		return "Newbie"
	case RoleMentor:
		return "Mentor"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}
