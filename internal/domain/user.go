package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsAdmin reports whether the role grants administrative operations.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// User represents an account keyed by email. Accounts are created on first
// sign-in and never hard-deleted.
type User struct {
	ID         string         `json:"_id"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	PhotoURL   string         `json:"photoURL"`
	Role       UserRole       `json:"role"`
	Properties map[string]any `json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// IsAdmin reports whether the user may perform administrative operations.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
