package repository

import (
	"context"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// riderPerformancePayload bundles the rows with their summary so one cache
// slot holds the complete backend response.
type riderPerformancePayload struct {
	Riders  []models.RiderPerformanceRow `json:"riders"`
	Summary models.RiderSummary          `json:"summary"`
}

// riderRepository implements the RiderRepository interface on top of the
// backend client and the query cache.
type riderRepository struct {
	client *trafeek.Client
	store  *query.Store
	ttl    time.Duration
}

// NewRiderRepository creates a new rider repository instance
func NewRiderRepository(client *trafeek.Client, store *query.Store) RiderRepository {
	return &riderRepository{
		client: client,
		store:  store,
		ttl:    env.GetEnvDuration("QUERY_TTL_SECONDS", time.Second, 60*time.Second),
	}
}

// Performance returns rider aggregates for a date range, cached per
// range/email combination. Rider data is read-only from the dashboard, so
// nothing ever invalidates this namespace explicitly and slots age out by TTL.
func (r *riderRepository) Performance(ctx context.Context, token, startDate, endDate, email string) ([]models.RiderPerformanceRow, *models.RiderSummary, error) {
	key := query.NewKey(NamespaceRiders, map[string]string{
		"start": startDate,
		"end":   endDate,
		"email": email,
	})
	data, err := r.store.Fetch(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		riders, summary, err := r.client.RiderPerformance(ctx, token, startDate, endDate, email)
		if err != nil {
			return nil, err
		}
		return riderPerformancePayload{Riders: riders, Summary: *summary}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	var payload riderPerformancePayload
	if err := query.Decode(data, &payload); err != nil {
		return nil, nil, err
	}
	return payload.Riders, &payload.Summary, nil
}
