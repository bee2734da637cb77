// Package pool contains the domain entities of the futebolada backend.
package pool

import "time"

// Role is the access level of an admin account.
type Role string

const (
	// RoleAdmin grants full access to every admin operation.
	RoleAdmin Role = "admin"
	// RoleReadOnly grants read access only.
	RoleReadOnly Role = "read-only"
)

// ParseRole reports whether s is a known role and returns it.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleReadOnly:
		return Role(s), true
	default:
		return "", false
	}
}

type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     Role   `json:"role"`
}

type Player struct {
	ID        int    `json:"id_player"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
	Username  string `json:"username"`
	Password  string `json:"-"` // bcrypt hash
}

// Week is a single round of the pool. Rows are append-only; the backend
// only ever lists them or creates a new one.
type Week struct {
	ID   int       `json:"id_week"`
	Date time.Time `json:"date"`
}
