package models

import "fmt"

// Role is a totally ordered privilege tier. Comparisons use the numeric
// order, so a single AtLeast check covers every gate in the app.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleEditor
	RoleAdmin
)

func (r Role) AtLeast(min Role) bool { return r >= min }

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleEditor:
		return "editor"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// ParseRole accepts only the three stored tiers; anonymous is never persisted.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "editor":
		return RoleEditor, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleAnonymous, fmt.Errorf("unknown role %q", s)
	}
}
