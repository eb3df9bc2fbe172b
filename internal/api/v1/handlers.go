package apiv1

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/reportlist"
)

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetProfile returns the acting admin identity from the session context.
func (s *APIServer) GetProfile(c *fiber.Ctx) error {
	ac := admincontext.GetAdminContext(c)

	return success(c, ac.Identity())
}

// GetReports returns the derived report list. Same cache and derivation path
// as the HTML page: the category goes upstream, search/location/sort are
// local refinements.
func (s *APIServer) GetReports(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	category := strings.TrimSpace(c.Query("type"))
	opts := reportlist.Options{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		Sort:     reportlist.NormalizeSort(c.Query("sort")),
	}

	reports, err := repository.GetGlobalRepositories().Report.List(c.Context(), token, category)
	if err != nil {
		log.Printf("api: failed to load reports: %v", err)
		return failure(c, fiber.StatusBadGateway, "failed to load reports")
	}

	return success(c, reportlist.Refine(reports, opts))
}

// GetRealtimeAnalytics returns the live snapshot the dashboard polls.
func (s *APIServer) GetRealtimeAnalytics(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	realtime, err := repository.GetGlobalRepositories().Analytics.Realtime(c.Context(), token)
	if err != nil {
		log.Printf("api: failed to load realtime analytics: %v", err)
		return failure(c, fiber.StatusBadGateway, "failed to load realtime analytics")
	}

	return success(c, realtime)
}

// GetAuditSummary returns the per-action counts from the local audit trail.
func (s *APIServer) GetAuditSummary(c *fiber.Ctx) error {
	counts, err := repository.GetGlobalRepositories().Audit.CountByAction()
	if err != nil {
		log.Printf("api: failed to count audit actions: %v", err)
		return failure(c, fiber.StatusInternalServerError, "failed to load the audit summary")
	}

	return success(c, counts)
}

func success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
