package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/session"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// AdminContextMiddleware hydrates the admin context for every request from
// the caller's session and keeps the stored token validated against the
// backend.
//
// Session lifecycle as seen from here: no stored token means unauthenticated;
// a stored token whose identity is due for revalidation makes this request
// the validating one; a confirmed admin identity is authenticated. A failed
// validation destroys the session, which is the forced-logout path and the
// only failure that ends a session.
func AdminContextMiddleware(client *trafeek.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			setAnonymous(c)
			return c.Next()
		}

		token := stringValue(sess.Get(admincontext.KeyToken))
		if token == "" {
			setAnonymous(c)
			return c.Next()
		}

		window := env.GetEnvDuration("AUTH_REVALIDATE_MINUTES", time.Minute, 15*time.Minute)
		validatedAt := unixValue(sess.Get(admincontext.KeyValidatedAt))
		if time.Since(validatedAt) > window {
			identity, err := client.Me(c.Context(), token)
			if err != nil || !identity.IsAdmin() {
				log.Printf("session revalidation failed, ending session: %v", err)
				_ = sess.Destroy()
				setAnonymous(c)
				return c.Next()
			}

			sess.Set(admincontext.KeyAdminID, identity.ID)
			sess.Set(admincontext.KeyAdminEmail, identity.Email)
			sess.Set(admincontext.KeyAdminName, identity.Name)
			sess.Set(admincontext.KeySubRole, identity.SubRole)
			sess.Set(admincontext.KeyValidatedAt, strconv.FormatInt(time.Now().Unix(), 10))
			if err := sess.Save(); err != nil {
				log.Printf("failed to save session after revalidation: %v", err)
			}
		}

		ac := admincontext.AdminContext{
			AdminID:    stringValue(sess.Get(admincontext.KeyAdminID)),
			Email:      stringValue(sess.Get(admincontext.KeyAdminEmail)),
			Name:       stringValue(sess.Get(admincontext.KeyAdminName)),
			SubRole:    stringValue(sess.Get(admincontext.KeySubRole)),
			Token:      token,
			IsLoggedIn: true,
		}
		admincontext.SetAdminContext(c, ac)
		c.Locals(admincontext.KeyFromProtected, true)
		c.Locals(admincontext.KeyIsAdmin, true)

		return c.Next()
	}
}

func setAnonymous(c *fiber.Ctx) {
	admincontext.SetAdminContext(c, admincontext.AdminContext{IsLoggedIn: false})
	c.Locals(admincontext.KeyFromProtected, false)
	c.Locals(admincontext.KeyIsAdmin, false)
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func unixValue(v any) time.Time {
	raw := stringValue(v)
	if raw == "" {
		return time.Time{}
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
