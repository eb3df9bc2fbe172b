package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/app/repository"
)

// Global admin controller instance
var adminController *AdminController

// InitializeAdminController initializes the global admin controller with repositories
func InitializeAdminController() {
	repos := repository.GetGlobalRepositories()
	adminController = NewAdminController(repos)
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}

// Adapter functions to maintain compatibility with existing router

// HandleAdminDashboard - Adapter for the admin dashboard
func HandleAdminDashboard(c *fiber.Ctx) error {
	return GetAdminController().HandleDashboard(c)
}

// HandleAdminUsers - Adapter for user management
func HandleAdminUsers(c *fiber.Ctx) error {
	return GetAdminController().HandleUsers(c)
}

// HandleAdminUserSuspend - Adapter for user suspension
func HandleAdminUserSuspend(c *fiber.Ctx) error {
	return GetAdminController().HandleUserSuspend(c)
}

// HandleAdminUserUnsuspend - Adapter for lifting a suspension
func HandleAdminUserUnsuspend(c *fiber.Ctx) error {
	return GetAdminController().HandleUserUnsuspend(c)
}

// HandleAdminUserDelete - Adapter for user deletion
func HandleAdminUserDelete(c *fiber.Ctx) error {
	return GetAdminController().HandleUserDelete(c)
}

// Report moderation - adapters using the dedicated AdminReportsController

// HandleAdminReports - Adapter for the report list
func HandleAdminReports(c *fiber.Ctx) error {
	return GetAdminReportsController().HandleAdminReports(c)
}

// HandleAdminReportShow - Adapter for the report detail page
func HandleAdminReportShow(c *fiber.Ctx) error {
	return GetAdminReportsController().HandleAdminReportShow(c)
}

// HandleAdminReportCommentAdd - Adapter for posting a comment
func HandleAdminReportCommentAdd(c *fiber.Ctx) error {
	return GetAdminReportsController().HandleAdminReportCommentAdd(c)
}

// HandleAdminReportCommentDelete - Adapter for comment deletion
func HandleAdminReportCommentDelete(c *fiber.Ctx) error {
	return GetAdminReportsController().HandleAdminReportCommentDelete(c)
}

// HandleAdminReportDelete - Adapter for report deletion
func HandleAdminReportDelete(c *fiber.Ctx) error {
	return GetAdminReportsController().HandleAdminReportDelete(c)
}

// Rider performance - adapters using the dedicated AdminRidersController

// HandleAdminRiders - Adapter for the rider performance page
func HandleAdminRiders(c *fiber.Ctx) error {
	return GetAdminRidersController().HandleAdminRiders(c)
}

// Exports - adapters using the dedicated ExportController

// HandleExportReports - Adapter for the backend reports CSV
func HandleExportReports(c *fiber.Ctx) error {
	return GetExportController().HandleExportReportsCSV(c)
}

// HandleExportRiders - Adapter for the backend rider performance CSV
func HandleExportRiders(c *fiber.Ctx) error {
	return GetExportController().HandleExportRidersCSV(c)
}

// HandleExportFilteredReports - Adapter for the locally derived CSV
func HandleExportFilteredReports(c *fiber.Ctx) error {
	return GetExportController().HandleExportFilteredReportsCSV(c)
}

// Audit trail - adapters using the dedicated AdminAuditController

// HandleAdminAudit - Adapter for the audit trail page
func HandleAdminAudit(c *fiber.Ctx) error {
	return GetAdminAuditController().HandleAdminAudit(c)
}

// HandleAdminAuditData - Adapter for the audit counters poll
func HandleAdminAuditData(c *fiber.Ctx) error {
	return GetAdminAuditController().HandleAdminAuditData(c)
}
