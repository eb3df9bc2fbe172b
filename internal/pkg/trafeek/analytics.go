package trafeek

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

// Analytics fetches the aggregate counters behind the dashboard cards.
func (c *Client) Analytics(ctx context.Context, token string) (*models.Analytics, error) {
	var out models.Analytics
	if err := c.request(ctx, http.MethodGet, "/admin/analytics", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardAnalytics fetches the report-volume series for a period
// ("7d", "30d", "90d"). The backend may leave gaps on zero-report days;
// callers fill those for charting.
func (c *Client) DashboardAnalytics(ctx context.Context, token, period string) (*models.DashboardAnalytics, error) {
	query := url.Values{}
	if period = strings.TrimSpace(period); period != "" {
		query.Set("period", period)
	}

	var out models.DashboardAnalytics
	if err := c.request(ctx, http.MethodGet, "/analytics/dashboard", token, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RealtimeAnalytics fetches the live snapshot polled by the dashboard.
func (c *Client) RealtimeAnalytics(ctx context.Context, token string) (*models.RealtimeAnalytics, error) {
	var out models.RealtimeAnalytics
	if err := c.request(ctx, http.MethodGet, "/analytics/realtime", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RiderPerformance fetches per-rider aggregates for a date range, optionally
// narrowed to one rider email. Dates are YYYY-MM-DD; empty values mean the
// backend's defaults.
func (c *Client) RiderPerformance(ctx context.Context, token, startDate, endDate, email string) ([]models.RiderPerformanceRow, *models.RiderSummary, error) {
	query := url.Values{}
	if startDate = strings.TrimSpace(startDate); startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate = strings.TrimSpace(endDate); endDate != "" {
		query.Set("endDate", endDate)
	}
	if email = strings.TrimSpace(email); email != "" {
		query.Set("email", email)
	}

	var out struct {
		Riders  []models.RiderPerformanceRow `json:"riders"`
		Summary models.RiderSummary          `json:"summary"`
	}
	if err := c.request(ctx, http.MethodGet, "/admin/rider-performance", token, query, nil, &out); err != nil {
		return nil, nil, err
	}
	return out.Riders, &out.Summary, nil
}
