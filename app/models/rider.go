package models

// RiderPerformanceRow is one rider's server-computed aggregate for the
// selected date range. Read-only.
type RiderPerformanceRow struct {
	Email          string         `json:"email"`
	Name           string         `json:"name,omitempty"`
	CategoryCounts map[string]int `json:"category_counts"`
	TotalReports   int            `json:"total_reports"`
	TotalUpvotes   int            `json:"total_upvotes"`
	TotalComments  int            `json:"total_comments"`
}

// RiderSummary aggregates the whole selection.
type RiderSummary struct {
	TotalRiders   int     `json:"total_riders"`
	TotalReports  int     `json:"total_reports"`
	TotalUpvotes  int     `json:"total_upvotes"`
	TotalComments int     `json:"total_comments"`
	AvgPerRider   float64 `json:"avg_per_rider"`
}

// CategoryCount returns the rider's count for one category, zero when absent.
func (r *RiderPerformanceRow) CategoryCount(category string) int {
	if r.CategoryCounts == nil {
		return 0
	}
	return r.CategoryCounts[category]
}
