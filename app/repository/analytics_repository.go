package repository

import (
	"context"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// realtimeTTL keeps the live snapshot short-lived. The dashboard polls this
// endpoint, so a long freshness window would defeat the point.
const realtimeTTL = 15 * time.Second

// analyticsRepository implements the AnalyticsRepository interface on top of
// the backend client and the query cache.
type analyticsRepository struct {
	client *trafeek.Client
	store  *query.Store
	ttl    time.Duration
}

// NewAnalyticsRepository creates a new analytics repository instance
func NewAnalyticsRepository(client *trafeek.Client, store *query.Store) AnalyticsRepository {
	return &analyticsRepository{
		client: client,
		store:  store,
		ttl:    env.GetEnvDuration("QUERY_TTL_SECONDS", time.Second, 60*time.Second),
	}
}

// Overview returns the aggregate counters behind the dashboard cards.
func (r *analyticsRepository) Overview(ctx context.Context, token string) (*models.Analytics, error) {
	key := query.NewKey(NamespaceAnalytics, map[string]string{"view": "overview"})
	data, err := r.store.Fetch(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		return r.client.Analytics(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	var analytics models.Analytics
	if err := query.Decode(data, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Dashboard returns the report-volume series for the chart, cached per period.
func (r *analyticsRepository) Dashboard(ctx context.Context, token, period string) (*models.DashboardAnalytics, error) {
	key := query.NewKey(NamespaceAnalytics, map[string]string{"view": "dashboard", "period": period})
	data, err := r.store.Fetch(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		return r.client.DashboardAnalytics(ctx, token, period)
	})
	if err != nil {
		return nil, err
	}

	var dashboard models.DashboardAnalytics
	if err := query.Decode(data, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// Realtime returns the live snapshot with its own short freshness window.
func (r *analyticsRepository) Realtime(ctx context.Context, token string) (*models.RealtimeAnalytics, error) {
	key := query.NewKey(NamespaceAnalytics, map[string]string{"view": "realtime"})
	data, err := r.store.Fetch(ctx, key, realtimeTTL, func(ctx context.Context) (any, error) {
		return r.client.RealtimeAnalytics(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	var realtime models.RealtimeAnalytics
	if err := query.Decode(data, &realtime); err != nil {
		return nil, err
	}
	return &realtime, nil
}
