package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/confirm"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/constants"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/statistics"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/viewmodel"
)

// AdminController handles the dashboard and user management using the
// repository pattern
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with injected repositories
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

// HandleDashboard renders the admin dashboard: aggregate counters, the
// realtime snapshot and the last-seven-days report chart.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	overview, err := ac.repos.Analytics.Overview(c.Context(), token)
	if err != nil {
		// A failed fetch renders the error state; no retry, no redirect.
		log.Printf("Admin Controller Error: Failed to load analytics - %v", err)
		return render(c, "admin/dashboard", "Dashboard", fiber.Map{
			"LoadError": backendMessage(err),
		})
	}

	// Realtime and the chart are secondary widgets; their failures degrade
	// to empty data instead of failing the page.
	realtime, err := ac.repos.Analytics.Realtime(c.Context(), token)
	if err != nil {
		log.Printf("Failed to load the realtime snapshot: %v", err)
		realtime = nil
	}

	reportStats := ac.getLastSevenDaysSeries(c, token)
	moderation := statistics.GetModerationStats()

	return render(c, "admin/dashboard", "Dashboard", fiber.Map{
		"Overview":    overview,
		"Realtime":    realtime,
		"ReportStats": reportStats,
		"Categories":  viewmodel.BuildCategoryCards(overview.ReportsByCategory),
		"Moderation":  moderation,
	})
}

// HandleUsers renders the user management page. Search and role narrowing
// are backend parameters and part of the cache key, not local filtering.
func (ac *AdminController) HandleUsers(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)
	search := strings.TrimSpace(c.Query("search"))
	role := strings.TrimSpace(c.Query("role"))

	users, err := ac.repos.User.List(c.Context(), token, search, role)
	if err != nil {
		log.Printf("Admin Controller Error: Failed to load users - %v", err)
		return render(c, "admin/users", "User Management", fiber.Map{
			"LoadError": backendMessage(err),
			"Search":    search,
			"Role":      role,
			"Roles":     models.UserRoles(),
		})
	}

	ctx := admincontext.GetAdminContext(c)

	return render(c, "admin/users", "User Management", fiber.Map{
		"Users":  viewmodel.BuildUserRows(users, ctx.AdminID),
		"Search": search,
		"Role":   role,
		"Roles":  models.UserRoles(),
	})
}

// HandleUserSuspend suspends an account. The reason doubles as the
// confirmation: an empty reason cancels without calling the backend.
func (ac *AdminController) HandleUserSuspend(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Redirect(constants.AdminUsersRoute)
	}

	reason := strings.TrimSpace(c.FormValue("reason"))
	confirmation := confirm.New(models.AuditActionUserSuspend, userID).Begin()
	if confirmation.SubmitReason(reason) != confirm.StateConfirmed {
		// Declined confirmations redirect silently
		return c.Redirect(constants.AdminUsersRoute, fiber.StatusSeeOther)
	}

	if err := ac.guardSelfAction(c, userID, "You cannot suspend your own account"); err != nil {
		return err
	}

	token := admincontext.GetToken(c)
	if err := ac.repos.User.Suspend(c.Context(), token, userID, reason); err != nil {
		return ac.handleError(c, "Failed to suspend user: "+backendMessage(err), err)
	}

	recordAudit(c, models.AuditActionUserSuspend, models.AuditTargetUser, userID, reason)

	fm := fiber.Map{
		"type":    "success",
		"message": "User suspended",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.AdminUsersRoute)
}

// HandleUserUnsuspend lifts a suspension.
func (ac *AdminController) HandleUserUnsuspend(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Redirect(constants.AdminUsersRoute)
	}

	token := admincontext.GetToken(c)
	if err := ac.repos.User.Unsuspend(c.Context(), token, userID); err != nil {
		return ac.handleError(c, "Failed to unsuspend user: "+backendMessage(err), err)
	}

	recordAudit(c, models.AuditActionUserUnsuspend, models.AuditTargetUser, userID, "")

	fm := fiber.Map{
		"type":    "success",
		"message": "Suspension lifted",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.AdminUsersRoute)
}

// HandleUserDelete deletes an account after the typed confirmation phrase.
func (ac *AdminController) HandleUserDelete(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.SendStatus(fiber.StatusMethodNotAllowed)
	}

	userID := c.Params("id")
	if userID == "" {
		return c.Redirect(constants.AdminUsersRoute)
	}

	confirmation := confirm.New(models.AuditActionUserDelete, userID).Begin()
	if confirmation.Submit(c.FormValue("confirmation")) != confirm.StateConfirmed {
		// Anything but the exact phrase cancels without an error
		return c.Redirect(constants.AdminUsersRoute, fiber.StatusSeeOther)
	}

	if err := ac.guardSelfAction(c, userID, "You cannot delete your own account"); err != nil {
		return err
	}

	token := admincontext.GetToken(c)
	if err := ac.repos.User.Delete(c.Context(), token, userID); err != nil {
		return ac.handleError(c, "Failed to delete user: "+backendMessage(err), err)
	}

	recordAudit(c, models.AuditActionUserDelete, models.AuditTargetUser, userID, "")

	fm := fiber.Map{
		"type":    "success",
		"message": "User deleted successfully",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.AdminUsersRoute)
}

// guardSelfAction blocks an admin from acting on their own account.
func (ac *AdminController) guardSelfAction(c *fiber.Ctx, userID, message string) error {
	ctx := admincontext.GetAdminContext(c)
	if ctx.AdminID != userID {
		return nil
	}

	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}

	return flash.WithError(c, fm).Redirect(constants.AdminUsersRoute)
}

// getLastSevenDaysSeries fetches the seven day report series and fills days
// the backend omitted with zero counts so the chart always has seven points.
func (ac *AdminController) getLastSevenDaysSeries(c *fiber.Ctx, token string) []models.DailyCount {
	startDate := time.Now().AddDate(0, 0, -6).Truncate(24 * time.Hour)

	dashboard, err := ac.repos.Analytics.Dashboard(c.Context(), token, "7d")
	if err != nil {
		// Log error and return empty stats
		log.Printf("Error getting dashboard series: %v", err)
		return ac.createEmptyDailyCounts(7)
	}

	return ac.fillDailyGaps(dashboard.Daily, startDate, 7)
}

// createEmptyDailyCounts creates a slice of DailyCount with zero counts for the last n days
func (ac *AdminController) createEmptyDailyCounts(days int) []models.DailyCount {
	result := make([]models.DailyCount, days)
	now := time.Now()

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))
		result[i] = models.DailyCount{Date: date.Format("2006-01-02"), Count: 0}
	}

	return result
}

// fillDailyGaps fills missing dates in the series with zero counts
func (ac *AdminController) fillDailyGaps(daily []models.DailyCount, startDate time.Time, days int) []models.DailyCount {
	result := make([]models.DailyCount, days)
	countsByDate := make(map[string]int)

	for _, point := range daily {
		countsByDate[point.Date] = point.Count
	}

	for i := 0; i < days; i++ {
		dateStr := startDate.AddDate(0, 0, i).Format("2006-01-02")
		result[i] = models.DailyCount{Date: dateStr, Count: countsByDate[dateStr]}
	}

	return result
}

// handleError handles mutation errors consistently: log, flash, redirect.
func (ac *AdminController) handleError(c *fiber.Ctx, message string, err error) error {
	log.Printf("Admin Controller Error: %s - %v", message, err)

	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}

	// Return to appropriate page based on context
	redirectPath := constants.AdminRoute
	if c.Path() != "" {
		// Extract section from path for smart redirect
		if strings.Contains(c.Path(), "/users") {
			redirectPath = constants.AdminUsersRoute
		} else if strings.Contains(c.Path(), "/reports") {
			redirectPath = constants.AdminReportsRoute
		} else if strings.Contains(c.Path(), "/riders") {
			redirectPath = constants.AdminRidersRoute
		}
	}

	return flash.WithError(c, fm).Redirect(redirectPath)
}
