package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/jobqueue"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/metrics/counter"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/statistics"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/viewmodel"
)

const auditPageSize = 50

// AdminAuditController handles the local audit trail page using the
// repository pattern
type AdminAuditController struct {
	auditRepo repository.AuditRepository
}

// NewAdminAuditController creates a new audit controller with repository dependency
func NewAdminAuditController(auditRepo repository.AuditRepository) *AdminAuditController {
	return &AdminAuditController{
		auditRepo: auditRepo,
	}
}

// Global admin audit controller instance
var adminAuditController *AdminAuditController

// InitializeAdminAuditController initializes the global audit controller with repositories
func InitializeAdminAuditController() {
	repos := repository.GetGlobalRepositories()
	adminAuditController = NewAdminAuditController(repos.Audit)
}

// GetAdminAuditController returns the global audit controller instance
func GetAdminAuditController() *AdminAuditController {
	if adminAuditController == nil {
		InitializeAdminAuditController()
	}
	return adminAuditController
}

// HandleAdminAudit renders the audit trail: recent entries, per-action
// counts, the moderation counters and the state of the background queue.
// ?admin=<id> narrows the listing to one staff member.
func (aac *AdminAuditController) HandleAdminAudit(c *fiber.Ctx) error {
	adminFilter := strings.TrimSpace(c.Query("admin"))

	var entries []models.AuditEntry
	var err error
	if adminFilter != "" {
		entries, err = aac.auditRepo.FindByAdmin(adminFilter, auditPageSize)
	} else {
		entries, err = aac.auditRepo.FindRecent(auditPageSize)
	}
	if err != nil {
		log.Printf("Failed to load audit entries: %v", err)
		return render(c, "admin/audit", "Audit Trail", fiber.Map{
			"LoadError": "Failed to load the audit trail",
		})
	}

	actionCounts, err := aac.auditRepo.CountByAction()
	if err != nil {
		log.Printf("Failed to count audit actions: %v", err)
	}

	counts := make([]fiber.Map, 0, len(actionCounts))
	for _, ac := range actionCounts {
		counts = append(counts, fiber.Map{
			"Label": viewmodel.ActionLabel(ac.Action),
			"Count": ac.Count,
		})
	}

	bind := fiber.Map{
		"Entries":         viewmodel.BuildAuditRows(entries),
		"ActionCounts":    counts,
		"AdminFilter":     adminFilter,
		"Moderation":      statistics.GetModerationStats(),
		"QueuePending":    int64(0),
		"QueueProcessing": int64(0),
		"QueueCompleted":  int64(0),
		"QueueFailed":     int64(0),
	}

	// Queue state and download totals are secondary widgets; their
	// failures degrade to empty values.
	if stats, err := jobqueue.GetManager().GetQueue().GetJobStats(c.Context()); err != nil {
		log.Printf("Failed to load job stats: %v", err)
	} else {
		bind["QueuePending"] = stats[jobqueue.JobStatusPending]
		bind["QueueProcessing"] = stats[jobqueue.JobStatusProcessing]
		bind["QueueCompleted"] = stats[jobqueue.JobStatusCompleted]
		bind["QueueFailed"] = stats[jobqueue.JobStatusFailed]
	}

	if downloads, err := counter.Totals(); err != nil {
		log.Printf("Failed to load export download totals: %v", err)
	} else {
		bind["Downloads"] = downloads
	}

	return render(c, "admin/audit", "Audit Trail", bind)
}

// HandleAdminAuditData returns the audit counters as JSON for the page's
// refresh poll.
func (aac *AdminAuditController) HandleAdminAuditData(c *fiber.Ctx) error {
	actionCounts, err := aac.auditRepo.CountByAction()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to count audit actions",
		})
	}

	moderation := statistics.GetModerationStats()

	queueStats := make(map[string]int64)
	if stats, err := jobqueue.GetManager().GetQueue().GetJobStats(c.Context()); err == nil {
		for status, count := range stats {
			queueStats[string(status)] = count
		}
	}

	return c.JSON(fiber.Map{
		"actions":    actionCounts,
		"moderation": moderation,
		"queue":      queueStats,
	})
}
