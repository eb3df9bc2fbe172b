package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/admincontext"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/constants"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/exportarchive"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/jobqueue"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/metrics/counter"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/reportlist"
)

// Export kinds group downloads for the counters and the archive layout.
const (
	ExportKindReports         = "reports"
	ExportKindRiders          = "rider-performance"
	ExportKindFilteredReports = "reports-filtered"
)

const (
	exportStagePrefix = "export_stage:"
	exportStageTTL    = 30 * time.Minute
)

// ExportController handles the CSV downloads.
type ExportController struct {
	repos *repository.Repositories
}

// NewExportController creates a new export controller with injected repositories
func NewExportController(repos *repository.Repositories) *ExportController {
	return &ExportController{
		repos: repos,
	}
}

// Global export controller instance
var exportController *ExportController

// InitializeExportController initializes the global export controller with repositories
func InitializeExportController() {
	exportController = NewExportController(repository.GetGlobalRepositories())
}

// GetExportController returns the global export controller instance
func GetExportController() *ExportController {
	if exportController == nil {
		InitializeExportController()
	}
	return exportController
}

// HandleExportReportsCSV streams the backend's report export to the browser.
func (ec *ExportController) HandleExportReportsCSV(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	data, err := ec.repos.Export.ReportsCSV(c.Context(), token)
	if err != nil {
		return ec.handleError(c, "Failed to export reports: "+backendMessage(err), err, constants.AdminReportsRoute)
	}

	fileName := exportFileName(ExportKindReports)
	ec.finishExport(c, ExportKindReports, fileName, data)

	return sendCSV(c, fileName, data)
}

// HandleExportRidersCSV streams the backend's rider performance export.
func (ec *ExportController) HandleExportRidersCSV(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	data, err := ec.repos.Export.RiderPerformanceCSV(c.Context(), token)
	if err != nil {
		return ec.handleError(c, "Failed to export rider performance: "+backendMessage(err), err, constants.AdminRidersRoute)
	}

	fileName := exportFileName(ExportKindRiders)
	ec.finishExport(c, ExportKindRiders, fileName, data)

	return sendCSV(c, fileName, data)
}

// HandleExportFilteredReportsCSV writes the currently refined report list as
// CSV, derived locally through the same pipeline the HTML page uses.
func (ec *ExportController) HandleExportFilteredReportsCSV(c *fiber.Ctx) error {
	token := admincontext.GetToken(c)

	category := strings.TrimSpace(c.Query("type"))
	opts := reportlist.Options{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		Sort:     reportlist.NormalizeSort(c.Query("sort")),
	}

	reports, err := ec.repos.Report.List(c.Context(), token, category)
	if err != nil {
		return ec.handleError(c, "Failed to export reports: "+backendMessage(err), err, constants.AdminReportsRoute)
	}

	data, err := writeReportsCSV(reportlist.Refine(reports, opts))
	if err != nil {
		return ec.handleError(c, "Failed to write the export", err, constants.AdminReportsRoute)
	}

	fileName := exportFileName(ExportKindFilteredReports)
	ec.finishExport(c, ExportKindFilteredReports, fileName, data)

	return sendCSV(c, fileName, data)
}

// finishExport is the bookkeeping behind every successful download: bump the
// download counter, write the audit entry, stage the archive upload.
func (ec *ExportController) finishExport(c *fiber.Ctx, kind, fileName string, data []byte) {
	if err := counter.AddExportDownload(kind); err != nil {
		log.Printf("failed to count export download: %v", err)
	}

	recordAudit(c, models.AuditActionExport, models.AuditTargetExport, fileName, kind)

	ec.stageForArchive(c, kind, fileName, data)
}

// stageForArchive parks the CSV bytes in Redis and queues the upload so the
// download response never waits on storage. The job carries only the stage
// key; the admin token is never persisted anywhere.
func (ec *ExportController) stageForArchive(c *fiber.Ctx, kind, fileName string, data []byte) {
	cfg, err := exportarchive.LoadConfig()
	if err != nil || !cfg.IsEnabled() {
		return
	}

	stageKey := exportStagePrefix + uuid.New().String()
	if err := cache.Set(stageKey, data, exportStageTTL); err != nil {
		log.Printf("failed to stage export for archiving: %v", err)
		return
	}

	payload := jobqueue.ExportArchiveJobPayload{
		Kind:       kind,
		FileName:   fileName,
		StageKey:   stageKey,
		AdminEmail: admincontext.GetAdminContext(c).Email,
		Size:       int64(len(data)),
	}

	if _, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeExportArchive, payload.ToMap()); err != nil {
		log.Printf("failed to enqueue export archive job: %v", err)
	}
}

// handleError handles export errors consistently: log, flash, redirect.
func (ec *ExportController) handleError(c *fiber.Ctx, message string, err error, redirectPath string) error {
	log.Printf("Export Controller Error: %s - %v", message, err)

	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}

	return flash.WithError(c, fm).Redirect(redirectPath)
}

// exportFileName stamps downloads like trafeek_reports_20240131_154500.csv.
func exportFileName(kind string) string {
	return fmt.Sprintf("trafeek_%s_%s.csv", strings.ReplaceAll(kind, "-", "_"), time.Now().Format("20060102_150405"))
}

func sendCSV(c *fiber.Ctx, fileName string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}

// writeReportsCSV renders reports with a UTF-8 BOM and CRLF line endings so
// spreadsheet imports detect the encoding.
func writeReportsCSV(reports []models.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	header := []string{"ID", "Category", "Description", "Location", "Reporter", "Upvotes", "Comments", "Engagement", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, report := range reports {
		record := []string{
			report.ID,
			report.Category,
			report.Description,
			report.Location,
			report.Reporter.Email,
			strconv.Itoa(report.Upvotes),
			strconv.Itoa(report.CommentCount()),
			strconv.Itoa(report.EngagementScore()),
			report.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
