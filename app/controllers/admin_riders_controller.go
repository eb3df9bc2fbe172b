package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/viewmodel"
)

// AdminRidersController handles the rider performance view using the
// repository pattern
type AdminRidersController struct {
	riderRepo repository.RiderRepository
}

// NewAdminRidersController creates a new riders controller with repository dependency
func NewAdminRidersController(riderRepo repository.RiderRepository) *AdminRidersController {
	return &AdminRidersController{
		riderRepo: riderRepo,
	}
}

// Global admin riders controller instance
var adminRidersController *AdminRidersController

// InitializeAdminRidersController initializes the global riders controller with repositories
func InitializeAdminRidersController() {
	repos := repository.GetGlobalRepositories()
	adminRidersController = NewAdminRidersController(repos.Rider)
}

// GetAdminRidersController returns the global riders controller instance
func GetAdminRidersController() *AdminRidersController {
	if adminRidersController == nil {
		InitializeAdminRidersController()
	}
	return adminRidersController
}

// HandleAdminRiders renders the rider performance table plus summary cards
// for the selected date range. An empty range defaults to the running month.
func (rc *AdminRidersController) HandleAdminRiders(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	startDate := strings.TrimSpace(c.Query("startDate"))
	endDate := strings.TrimSpace(c.Query("endDate"))
	email := strings.TrimSpace(c.Query("email"))

	if startDate == "" && endDate == "" {
		now := time.Now()
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
		endDate = now.Format("2006-01-02")
	}

	bind := fiber.Map{
		"StartDate":  startDate,
		"EndDate":    endDate,
		"Email":      email,
		"Categories": viewmodel.BuildCategoryCards(nil),
	}

	if msg := validateDateRange(startDate, endDate); msg != "" {
		bind["LoadError"] = msg
		return render(c, "admin/riders", "Rider Performance", bind)
	}

	riders, summary, err := rc.riderRepo.Performance(c.Context(), token, startDate, endDate, email)
	if err != nil {
		log.Printf("Failed to load rider performance: %v", err)
		bind["LoadError"] = backendMessage(err)
		return render(c, "admin/riders", "Rider Performance", bind)
	}

	bind["Riders"] = viewmodel.BuildRiderRows(riders)
	bind["Summary"] = summary
	return render(c, "admin/riders", "Rider Performance", bind)
}

// validateDateRange checks the YYYY-MM-DD filter inputs. Empty values are
// allowed; the backend treats them as open ends.
func validateDateRange(startDate, endDate string) string {
	var start, end time.Time
	var err error

	if startDate != "" {
		if start, err = time.Parse("2006-01-02", startDate); err != nil {
			return "Start date must be formatted YYYY-MM-DD"
		}
	}
	if endDate != "" {
		if end, err = time.Parse("2006-01-02", endDate); err != nil {
			return "End date must be formatted YYYY-MM-DD"
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return "End date lies before the start date"
	}

	return ""
}
