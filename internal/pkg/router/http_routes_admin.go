package router

import (
	"github.com/Bryanx275/trafeek-admin/app/controllers"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes hosts the admin pages without mutation forms. Pages
// that render forms live in registerCSRFProtectedRoutes so the CSRF
// middleware issues them a token.
func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Rider performance
	adminGroup.Get("/riders", controllers.HandleAdminRiders)

	// CSV exports. The filtered reports route must be registered before the
	// report detail route in the CSRF group grabs "/admin/reports/:id".
	adminGroup.Get("/reports/export.csv", controllers.HandleExportFilteredReports)
	adminGroup.Get("/export/reports.csv", controllers.HandleExportReports)
	adminGroup.Get("/export/riders.csv", controllers.HandleExportRiders)

	// Audit trail + queue monitor
	adminGroup.Get("/audit", controllers.HandleAdminAudit)
	adminGroup.Get("/audit/data", controllers.HandleAdminAuditData)
}
