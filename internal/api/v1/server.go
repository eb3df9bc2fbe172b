package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/middleware"
)

// ServerInterface defines the handler set behind /api/v1.
type ServerInterface interface {
	GetPing(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	GetReports(c *fiber.Ctx) error
	GetRealtimeAnalytics(c *fiber.Ctx) error
	GetAuditSummary(c *fiber.Ctx) error
}

// Pong is the ping response payload.
type Pong struct {
	Ping string `json:"ping"`
}

// RegisterHandlers attaches the v1 endpoints to the router group. Everything
// except ping requires a logged-in dashboard session.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/ping", si.GetPing)
	router.Get("/profile", middleware.RequireAPISessionAuth, si.GetProfile)
	router.Get("/reports", middleware.RequireAPISessionAuth, si.GetReports)
	router.Get("/analytics/realtime", middleware.RequireAPISessionAuth, si.GetRealtimeAnalytics)
	router.Get("/audit/summary", middleware.RequireAPISessionAuth, si.GetAuditSummary)
}
