package admincontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

// AdminContext carries the authenticated staff identity and its backend
// credential through one request. The token travels with the context so every
// API call receives it explicitly; nothing credential-shaped lives in a
// package variable.
type AdminContext struct {
	AdminID    string `json:"admin_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	SubRole    string `json:"sub_role"`
	Token      string `json:"-"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// Identity rebuilds the wire identity for views and JSON responses.
func (a AdminContext) Identity() models.AdminIdentity {
	return models.AdminIdentity{
		ID:      a.AdminID,
		Email:   a.Email,
		Name:    a.Name,
		Role:    models.ROLE_ADMIN,
		SubRole: a.SubRole,
	}
}

// DisplayName falls back to the email when no name is set.
func (a AdminContext) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}

// IsSuperAdmin reports whether the session holds the widest sub-role.
func (a AdminContext) IsSuperAdmin() bool {
	return a.SubRole == models.SUBROLE_SUPER_ADMIN
}

// GetAdminContext retrieves the admin context from fiber context.
// Returns an anonymous context if none is set.
func GetAdminContext(c *fiber.Ctx) AdminContext {
	if ctx := c.Locals("ADMIN_CONTEXT"); ctx != nil {
		if ac, ok := ctx.(AdminContext); ok {
			return ac
		}
	}
	return AdminContext{IsLoggedIn: false}
}

// SetAdminContext installs the context for downstream handlers.
func SetAdminContext(c *fiber.Ctx, ac AdminContext) {
	c.Locals("ADMIN_CONTEXT", ac)
}

// IsLoggedIn checks if the current request belongs to an authenticated admin
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetAdminContext(c).IsLoggedIn
}

// GetToken returns the backend credential for the current request, or "".
func GetToken(c *fiber.Ctx) string {
	return GetAdminContext(c).Token
}

// GetAdminID returns the current admin's id, or "" if not logged in
func GetAdminID(c *fiber.Ctx) string {
	return GetAdminContext(c).AdminID
}
