package repository

import (
	"context"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// exportRepository implements the ExportRepository interface. Exports bypass
// the query cache entirely; an admin pulling a CSV wants the data as the
// backend sees it right now.
type exportRepository struct {
	client *trafeek.Client
}

// NewExportRepository creates a new export repository instance
func NewExportRepository(client *trafeek.Client) ExportRepository {
	return &exportRepository{client: client}
}

// ReportsCSV streams the backend's full report export.
func (r *exportRepository) ReportsCSV(ctx context.Context, token string) ([]byte, error) {
	return r.client.ExportReportsCSV(ctx, token)
}

// RiderPerformanceCSV streams the backend's rider performance export.
func (r *exportRepository) RiderPerformanceCSV(ctx context.Context, token string) ([]byte, error) {
	return r.client.ExportRiderPerformanceCSV(ctx, token)
}
