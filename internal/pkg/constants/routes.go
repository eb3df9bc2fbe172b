package constants

// Static route constants
const (
	LoginRoute        = "/login"
	AdminRoute        = "/admin"
	AdminReportsRoute = "/admin/reports"
	AdminUsersRoute   = "/admin/users"
	AdminRidersRoute  = "/admin/riders"
	AdminAuditRoute   = "/admin/audit"
)
