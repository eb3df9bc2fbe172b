package models

const (
	SUBROLE_SUPER_ADMIN = "super_admin"
	SUBROLE_MODERATOR   = "moderator"
	SUBROLE_SUPPORT     = "support"
)

// AdminIdentity is the authenticated staff identity returned by the auth
// endpoints. Role is always "admin" for a usable session; SubRole scopes what
// the identity may do.
type AdminIdentity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role"`
	SubRole string `json:"sub_role,omitempty"`
}

// IsAdmin reports whether the identity may use the dashboard at all.
func (a *AdminIdentity) IsAdmin() bool {
	return a.Role == ROLE_ADMIN
}

// IsSuperAdmin reports whether the identity holds the widest sub-role.
func (a *AdminIdentity) IsSuperAdmin() bool {
	return a.SubRole == SUBROLE_SUPER_ADMIN
}

// DisplayName falls back to the email when no name is set.
func (a *AdminIdentity) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}
