package repository

import (
	"context"
	"log"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// reportRepository implements the ReportRepository interface on top of the
// backend client and the query cache.
type reportRepository struct {
	client *trafeek.Client
	store  *query.Store
	ttl    time.Duration
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(client *trafeek.Client, store *query.Store) ReportRepository {
	return &reportRepository{
		client: client,
		store:  store,
		ttl:    env.GetEnvDuration("QUERY_TTL_SECONDS", time.Second, 60*time.Second),
	}
}

// List returns the report list for a category, cached under the normalized
// category key. Fetch order is preserved; refinement happens in the caller.
func (r *reportRepository) List(ctx context.Context, token, category string) ([]models.Report, error) {
	key := query.NewKey(NamespaceReports, map[string]string{"type": category})
	data, err := r.store.Fetch(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		return r.client.Reports(ctx, token, category)
	})
	if err != nil {
		return nil, err
	}

	var reports []models.Report
	if err := query.Decode(data, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Find locates one report inside the cached category list. The backend
// exposes no per-report endpoint; the detail view is served from list data.
func (r *reportRepository) Find(ctx context.Context, token, category, reportID string) (*models.Report, error) {
	reports, err := r.List(ctx, token, category)
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == reportID {
			return &reports[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a report and invalidates every report and analytics slot.
func (r *reportRepository) Delete(ctx context.Context, token, reportID string) error {
	if err := r.client.DeleteReport(ctx, token, reportID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// AddComment posts a staff comment and invalidates the report slots so the
// next read shows the persisted comment.
func (r *reportRepository) AddComment(ctx context.Context, token, reportID, text string) (*models.Comment, error) {
	comment, err := r.client.AddReportComment(ctx, token, reportID, text)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return comment, nil
}

// DeleteComment removes one comment and invalidates the report slots.
func (r *reportRepository) DeleteComment(ctx context.Context, token, reportID, commentID string) error {
	if err := r.client.DeleteReportComment(ctx, token, reportID, commentID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// invalidate runs after a confirmed mutation. Report mutations change the
// aggregate counters too, so the analytics namespace goes with them. A failed
// invalidation is logged, not propagated: the mutation itself succeeded and
// the stale slots age out by TTL.
func (r *reportRepository) invalidate(ctx context.Context) {
	for _, namespace := range []string{NamespaceReports, NamespaceAnalytics} {
		if _, err := r.store.InvalidateNamespace(ctx, namespace); err != nil {
			log.Printf("failed to invalidate %s cache: %v", namespace, err)
		}
	}
}
