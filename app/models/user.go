package models

import (
	"time"
)

const (
	ROLE_FREE    = "free"
	ROLE_PREMIUM = "premium"
	ROLE_ADMIN   = "admin"
)

// User is a platform account as delivered by the backend. The dashboard holds
// transient copies only; suspension state changes round-trip through the API.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name,omitempty"`
	Role             string    `json:"role"`
	Suspended        bool      `json:"suspended"`
	SuspensionReason string    `json:"suspension_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserRoles returns the selectable role filter values in display order.
func UserRoles() []string {
	return []string{ROLE_FREE, ROLE_PREMIUM, ROLE_ADMIN}
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}

// DisplayName falls back to the email when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// StatusLabel returns the label shown in the users table.
func (u *User) StatusLabel() string {
	if u.Suspended {
		return "suspended"
	}
	return "active"
}
