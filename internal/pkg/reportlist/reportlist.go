// Package reportlist derives the report list a screen actually shows from the
// list the backend returned: free-text search, location narrowing, and an
// optional engagement ordering. Pure functions, no I/O; safe to rerun on
// every input change.
package reportlist

import (
	"sort"
	"strings"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

const (
	SortNone           = "none"
	SortHighEngagement = "high-engagement"
	SortMostUpvoted    = "most-upvoted"
	SortMostCommented  = "most-commented"
)

// SortModes returns the selectable sort values in display order.
func SortModes() []string {
	return []string{SortNone, SortHighEngagement, SortMostUpvoted, SortMostCommented}
}

// NormalizeSort maps empty or unrecognized input to SortNone so a mangled
// query parameter degrades to the unsorted view instead of failing.
func NormalizeSort(mode string) string {
	switch mode {
	case SortHighEngagement, SortMostUpvoted, SortMostCommented:
		return mode
	default:
		return SortNone
	}
}

// Options are the three independent refinements. Zero values mean "off".
type Options struct {
	Search   string
	Location string
	Sort     string
}

// Refine filters, then orders, the fetched list for display. The input slice
// is never reordered or mutated; the result is a fresh slice. With all
// options off the result preserves the input order exactly.
func Refine(reports []models.Report, opts Options) []models.Report {
	out := filterReports(reports, opts.Search, opts.Location)
	sortReports(out, NormalizeSort(opts.Sort))
	return out
}

func filterReports(reports []models.Report, search, location string) []models.Report {
	search = strings.ToLower(search)
	location = strings.ToLower(location)

	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if !matchesSearch(r, search) {
			continue
		}
		if !matchesLocation(r, location) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch checks description, location name, and reporter email.
func matchesSearch(r models.Report, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Description), search) ||
		strings.Contains(strings.ToLower(r.Location), search) ||
		strings.Contains(strings.ToLower(r.Reporter.Email), search)
}

// matchesLocation never matches reports lacking a location name.
func matchesLocation(r models.Report, location string) bool {
	if location == "" {
		return true
	}
	if r.Location == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.Location), location)
}

// sortReports orders in place, descending by the mode's metric. The sort is
// stable: ties keep the order the filter step produced.
func sortReports(reports []models.Report, mode string) {
	var metric func(r *models.Report) int
	switch mode {
	case SortHighEngagement:
		metric = (*models.Report).EngagementScore
	case SortMostUpvoted:
		metric = func(r *models.Report) int { return r.Upvotes }
	case SortMostCommented:
		metric = (*models.Report).CommentCount
	default:
		return
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return metric(&reports[i]) > metric(&reports[j])
	})
}
