package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/confirm"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/constants"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/reportlist"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/viewmodel"
)

// AdminReportsController handles traffic report moderation using the
// repository pattern
type AdminReportsController struct {
	reportRepo repository.ReportRepository
}

// NewAdminReportsController creates a new reports controller with repository dependency
func NewAdminReportsController(reportRepo repository.ReportRepository) *AdminReportsController {
	return &AdminReportsController{
		reportRepo: reportRepo,
	}
}

// Global admin reports controller instance
var adminReportsController *AdminReportsController

// InitializeAdminReportsController initializes the global reports controller with repositories
func InitializeAdminReportsController() {
	repos := repository.GetGlobalRepositories()
	adminReportsController = NewAdminReportsController(repos.Report)
}

// GetAdminReportsController returns the global reports controller instance
func GetAdminReportsController() *AdminReportsController {
	if adminReportsController == nil {
		InitializeAdminReportsController()
	}
	return adminReportsController
}

type commentForm struct {
	Text string `validate:"required,max=2000"`
}

// HandleAdminReports renders the report moderation list. The category is a
// backend parameter (and cache key); search, location and sort are local
// derivations over the fetched list.
func (arc *AdminReportsController) HandleAdminReports(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	category := strings.TrimSpace(c.Query("type"))
	opts := reportlist.Options{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		Sort:     reportlist.NormalizeSort(c.Query("sort")),
	}

	bind := fiber.Map{
		"Category":   category,
		"Search":     opts.Search,
		"Location":   opts.Location,
		"Sort":       opts.Sort,
		"SortModes":  reportlist.SortModes(),
		"Categories": models.ReportCategories(),
	}

	reports, err := arc.reportRepo.List(c.Context(), token, category)
	if err != nil {
		// A failed fetch renders the error state; the cache slot keeps
		// whatever it had.
		log.Printf("Failed to load reports: %v", err)
		bind["LoadError"] = backendMessage(err)
		return render(c, "admin/reports", "Reports", bind)
	}

	refined := reportlist.Refine(reports, opts)
	rows, err := viewmodel.BuildReportRows(refined)
	if err != nil {
		// Unknown category in upstream data fails the render rather than
		// mislabeling the listing
		return fmt.Errorf("render reports: %w", err)
	}

	bind["Reports"] = rows
	bind["TotalFetched"] = len(reports)
	return render(c, "admin/reports", "Reports", bind)
}

// HandleAdminReportShow renders one report with its comment thread.
func (arc *AdminReportsController) HandleAdminReportShow(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)
	reportID := c.Params("id")
	category := strings.TrimSpace(c.Query("type"))

	report, err := arc.reportRepo.Find(c.Context(), token, category, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fm := fiber.Map{
				"type":    "error",
				"message": "Report not found",
			}
			return flash.WithError(c, fm).Redirect(constants.AdminReportsRoute)
		}
		log.Printf("Failed to load report %s: %v", reportID, err)
		return render(c, "admin/report_detail", "Report", fiber.Map{
			"LoadError": backendMessage(err),
			"Category":  category,
		})
	}

	row, err := viewmodel.NewReportRow(*report)
	if err != nil {
		return fmt.Errorf("render report %s: %w", reportID, err)
	}

	return render(c, "admin/report_detail", "Report", fiber.Map{
		"Row":      row,
		"Category": category,
	})
}

// HandleAdminReportCommentAdd posts an admin comment on a report.
func (arc *AdminReportsController) HandleAdminReportCommentAdd(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)
	reportID := c.Params("id")
	backTo := reportDetailPath(reportID, c.Query("type"))

	form := commentForm{Text: strings.TrimSpace(c.FormValue("text"))}
	if err := validator.New().Struct(form); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Please enter a comment",
		}
		return flash.WithError(c, fm).Redirect(backTo)
	}

	if _, err := arc.reportRepo.AddComment(c.Context(), token, reportID, form.Text); err != nil {
		return arc.handleError(c, "Failed to add comment: "+backendMessage(err), err, backTo)
	}

	recordAudit(c, models.AuditActionCommentAdd, models.AuditTargetReport, reportID, form.Text)

	fm := fiber.Map{
		"type":    "success",
		"message": "Comment added",
	}

	return flash.WithSuccess(c, fm).Redirect(backTo)
}

// HandleAdminReportCommentDelete removes a comment after the typed
// confirmation phrase.
func (arc *AdminReportsController) HandleAdminReportCommentDelete(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)
	reportID := c.Params("id")
	commentID := c.Params("commentId")
	backTo := reportDetailPath(reportID, c.Query("type"))

	confirmation := confirm.New(models.AuditActionCommentDelete, commentID).Begin()
	if confirmation.Submit(c.FormValue("confirmation")) != confirm.StateConfirmed {
		// Anything but the exact phrase cancels without an error
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	if err := arc.reportRepo.DeleteComment(c.Context(), token, reportID, commentID); err != nil {
		return arc.handleError(c, "Failed to delete comment: "+backendMessage(err), err, backTo)
	}

	recordAudit(c, models.AuditActionCommentDelete, models.AuditTargetComment, commentID, "report "+reportID)

	fm := fiber.Map{
		"type":    "success",
		"message": "Comment deleted",
	}

	return flash.WithSuccess(c, fm).Redirect(backTo)
}

// HandleAdminReportDelete removes a report after the typed confirmation
// phrase.
func (arc *AdminReportsController) HandleAdminReportDelete(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.SendStatus(fiber.StatusMethodNotAllowed)
	}

	token := admincontext.GetToken(c)
	reportID := c.Params("id")

	confirmation := confirm.New(models.AuditActionReportDelete, reportID).Begin()
	if confirmation.Submit(c.FormValue("confirmation")) != confirm.StateConfirmed {
		// Anything but the exact phrase cancels without an error
		return c.Redirect(constants.AdminReportsRoute, fiber.StatusSeeOther)
	}

	if err := arc.reportRepo.Delete(c.Context(), token, reportID); err != nil {
		return arc.handleError(c, "Failed to delete report: "+backendMessage(err), err, constants.AdminReportsRoute)
	}

	recordAudit(c, models.AuditActionReportDelete, models.AuditTargetReport, reportID, "")

	fm := fiber.Map{
		"type":    "success",
		"message": "Report deleted successfully",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.AdminReportsRoute)
}

// handleError handles mutation errors consistently: log, flash, redirect.
func (arc *AdminReportsController) handleError(c *fiber.Ctx, message string, err error, redirectPath string) error {
	log.Printf("Reports Controller Error: %s - %v", message, err)

	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}

	return flash.WithError(c, fm).Redirect(redirectPath)
}

// reportDetailPath keeps the category context when bouncing back to a detail
// page after a mutation.
func reportDetailPath(reportID, category string) string {
	path := constants.AdminReportsRoute + "/" + reportID
	if category = strings.TrimSpace(category); category != "" {
		path += "?type=" + category
	}
	return path
}
