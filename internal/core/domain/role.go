package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
)

// Role identifies which participant a user is in the adaptation process.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleHR         Role = "hr"
)

// Roles lists every known role in matrix row order.
var Roles = [...]Role{RoleEmployee, RoleSupervisor, RoleHR}

// index returns the matrix row of the role, or -1 for unknown roles.
func (r Role) index() int {
	switch r {
	case RoleEmployee:
		return 0
	case RoleSupervisor:
		return 1
	case RoleHR:
		return 2
	default:
		return -1
	}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r.index() >= 0
}

// CanEditPlans reports whether the role may edit or delete plan records.
func (r Role) CanEditPlans() bool {
	return r == RoleSupervisor || r == RoleHR
}

// ParseRole converts a string into a Role, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, s)
	}
	return r, nil
}
