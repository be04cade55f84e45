package models

import "fmt"

// Role is the caller's coarse administrative role. Roles are ordered:
// member < admin < super_admin.
type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// CanCheckIn reports whether the role may mark other users as attended.
func CanCheckIn(r Role) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsElevated reports whether the role may act on other users' registrations
// and manage events regardless of coordinator status.
func IsElevated(r Role) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
