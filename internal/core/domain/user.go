package domain

import "fmt"

// Role is one of the fixed operator roles. RoleCustom only appears on menu
// configurations that are not bound to any role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleCustom   Role = "custom"
)

// Roles lists the user roles in privilege order.
var Roles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// IsUserRole reports whether r is one a user can hold (custom is not).
func (r Role) IsUserRole() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// ParseRole accepts any user role plus "custom", the set valid on a
// menu configuration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if r.IsUserRole() || r == RoleCustom {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User models the authenticated operator.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Roles       []Role `json:"roles"`
	CurrentRole Role   `json:"current_role"`
}

// HasRole reports whether r is in the user's permitted role set.
func (u User) HasRole(r Role) bool {
	for _, held := range u.Roles {
		if held == r {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	out := u
	out.Roles = append([]Role(nil), u.Roles...)
	return out
}
