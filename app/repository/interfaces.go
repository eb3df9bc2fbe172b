package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// Query cache namespaces. Mutations invalidate whole namespaces so every
// parameterization of an affected list refetches.
const (
	NamespaceReports   = "reports"
	NamespaceUsers     = "users"
	NamespaceRiders    = "riders"
	NamespaceAnalytics = "analytics"
)

// ErrNotFound means the requested entity is absent from the backend data the
// repository currently sees.
var ErrNotFound = errors.New("repository: not found")

// ReportRepository serves report lists through the query cache and forwards
// moderation mutations to the backend. Every method takes the session token
// of the acting admin explicitly.
type ReportRepository interface {
	List(ctx context.Context, token, category string) ([]models.Report, error)
	Find(ctx context.Context, token, category, reportID string) (*models.Report, error)
	Delete(ctx context.Context, token, reportID string) error
	AddComment(ctx context.Context, token, reportID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, token, reportID, commentID string) error
}

// UserRepository serves platform accounts and account mutations.
type UserRepository interface {
	List(ctx context.Context, token, search, role string) ([]models.User, error)
	Find(ctx context.Context, token, userID string) (*models.User, error)
	Suspend(ctx context.Context, token, userID, reason string) error
	Unsuspend(ctx context.Context, token, userID string) error
	Delete(ctx context.Context, token, userID string) error
}

// RiderRepository serves the read-only rider performance aggregates.
type RiderRepository interface {
	Performance(ctx context.Context, token, startDate, endDate, email string) ([]models.RiderPerformanceRow, *models.RiderSummary, error)
}

// AnalyticsRepository serves the dashboard counter payloads.
type AnalyticsRepository interface {
	Overview(ctx context.Context, token string) (*models.Analytics, error)
	Dashboard(ctx context.Context, token, period string) (*models.DashboardAnalytics, error)
	Realtime(ctx context.Context, token string) (*models.RealtimeAnalytics, error)
}

// ExportRepository passes the backend's CSV exports through uncached.
type ExportRepository interface {
	ReportsCSV(ctx context.Context, token string) ([]byte, error)
	RiderPerformanceCSV(ctx context.Context, token string) ([]byte, error)
}

// AuditRepository persists the local trail of admin mutations.
type AuditRepository interface {
	Create(entry *models.AuditEntry) error
	FindRecent(limit int) ([]models.AuditEntry, error)
	FindByAdmin(adminID string, limit int) ([]models.AuditEntry, error)
	CountByAction() ([]models.AuditActionCount, error)
	PurgeOlderThan(age time.Duration) (int64, error)
}

// Deps are the external collaborators the repositories operate on. The
// trafeek client and query store back the API repositories; the gorm handle
// backs the audit trail.
type Deps struct {
	Client *trafeek.Client
	Store  *query.Store
	DB     *gorm.DB
}

// Repositories struct holds all repository instances
type Repositories struct {
	Report    ReportRepository
	User      UserRepository
	Rider     RiderRepository
	Analytics AnalyticsRepository
	Export    ExportRepository
	Audit     AuditRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(deps Deps) *Repositories {
	return &Repositories{
		Report:    NewReportRepository(deps.Client, deps.Store),
		User:      NewUserRepository(deps.Client, deps.Store),
		Rider:     NewRiderRepository(deps.Client, deps.Store),
		Analytics: NewAnalyticsRepository(deps.Client, deps.Store),
		Export:    NewExportRepository(deps.Client),
		Audit:     NewAuditRepository(deps.DB),
	}
}
