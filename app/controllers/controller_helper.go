package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/viewmodel"
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(admincontext.KeyFromProtected); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// render wraps c.Render with the frame every page expects: the acting admin
// identity, flash state and the CSRF token for forms.
func render(c *fiber.Ctx, name, page string, bind fiber.Map) error {
	ac := admincontext.GetAdminContext(c)

	layout := viewmodel.Layout{
		Page:          page,
		FromProtected: ac.IsLoggedIn,
		Msg:           flash.Get(c),
		AdminName:     ac.DisplayName(),
		AdminEmail:    ac.Email,
		IsSuperAdmin:  ac.IsSuperAdmin(),
	}
	if token, ok := c.Locals("csrf").(string); ok {
		layout.CSRFToken = token
	}

	base := fiber.Map{
		"Layout": layout,
	}
	for k, v := range bind {
		base[k] = v
	}

	return c.Render(name, base, "layouts/main")
}

// backendMessage extracts a message fit for a flash notice from a failed
// backend call.
func backendMessage(err error) string {
	var apiErr *trafeek.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}

	return "The backend did not respond. Please try again."
}

// GetClientIP determines the actual client IP address considering Cloudflare
// and standard reverse-proxy headers. Recorded on audit entries only.
func GetClientIP(c *fiber.Ctx) string {
	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	// X-Forwarded-For can contain a list of IPs - the first one is the
	// original client IP
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if clientIP := strings.TrimSpace(strings.Split(xff, ",")[0]); clientIP != "" {
			return clientIP
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ipAddr := c.IP()

	// For ::ffff: IPv4-mapped-IPv6 addresses
	if strings.HasPrefix(ipAddr, "::ffff:") && strings.Contains(ipAddr, ".") {
		return strings.TrimPrefix(ipAddr, "::ffff:")
	}

	return ipAddr
}

// recordAudit persists one audit entry for a completed mutation. A failed
// audit write is logged and never fails the admin's action.
func recordAudit(c *fiber.Ctx, action, targetType, targetID, detail string) {
	ac := admincontext.GetAdminContext(c)

	entry := &models.AuditEntry{
		AdminID:    ac.AdminID,
		AdminEmail: ac.Email,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
		AdminIP:    GetClientIP(c),
	}

	if err := repository.GetGlobalRepositories().Audit.Create(entry); err != nil {
		log.Printf("failed to record audit entry %s %s/%s: %v", action, targetType, targetID, err)
	}
}
