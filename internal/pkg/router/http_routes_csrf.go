package router

import (
	"strings"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/controllers"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", loggedInMiddleware, controllers.HandleStart)
	group.Get("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Post("/login", loggedInMiddleware, controllers.HandleAuthLogin)

	// Report moderation
	group.Get("/admin/reports", middleware.RequireAdmin, controllers.HandleAdminReports)
	group.Get("/admin/reports/:id", middleware.RequireAdmin, controllers.HandleAdminReportShow)
	group.Post("/admin/reports/:id/comment", middleware.RequireAdmin, controllers.HandleAdminReportCommentAdd)
	group.Post("/admin/reports/:id/comments/:commentId/delete", middleware.RequireAdmin, controllers.HandleAdminReportCommentDelete)
	group.Post("/admin/reports/:id/delete", middleware.RequireAdmin, controllers.HandleAdminReportDelete)

	// Account management
	group.Get("/admin/users", middleware.RequireAdmin, controllers.HandleAdminUsers)
	group.Post("/admin/users/:id/suspend", middleware.RequireAdmin, controllers.HandleAdminUserSuspend)
	group.Post("/admin/users/:id/unsuspend", middleware.RequireAdmin, controllers.HandleAdminUserUnsuspend)
	group.Post("/admin/users/:id/delete", middleware.RequireAdmin, middleware.RequireSuperAdmin, controllers.HandleAdminUserDelete)
}
