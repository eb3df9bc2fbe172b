package viewmodel

import (
	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/utils"
)

// ReportRow contains all information needed for displaying a report in the
// reports table and on the detail page.
type ReportRow struct {
	Report        models.Report
	CategoryLabel string
	CategoryColor string
	CommentCount  int
	Engagement    int
	ReporterName  string
	AvatarURL     string
}

// CategoryCard is one category tile on the dashboard.
type CategoryCard struct {
	Category string
	Label    string
	Color    string
	Count    int
}

// NewReportRow resolves the render metadata for one report. Fails on an
// unrecognized category so broken upstream data surfaces instead of
// rendering mislabeled.
func NewReportRow(report models.Report) (ReportRow, error) {
	meta, err := models.LookupCategory(report.Category)
	if err != nil {
		return ReportRow{}, err
	}

	name := report.Reporter.Name
	if name == "" {
		name = report.Reporter.Email
	}

	return ReportRow{
		Report:        report,
		CategoryLabel: meta.Label,
		CategoryColor: meta.Color,
		CommentCount:  report.CommentCount(),
		Engagement:    report.EngagementScore(),
		ReporterName:  name,
		AvatarURL:     utils.GetGravatarURL(report.Reporter.Email, 64),
	}, nil
}

// BuildReportRows maps a report list into table rows, failing the whole set
// if any report carries an unknown category.
func BuildReportRows(reports []models.Report) ([]ReportRow, error) {
	rows := make([]ReportRow, 0, len(reports))
	for _, report := range reports {
		row, err := NewReportRow(report)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BuildCategoryCards pairs the fixed category set with the counts from the
// analytics overview. Counts missing from the map render as zero.
func BuildCategoryCards(counts map[string]int) []CategoryCard {
	categories := models.ReportCategories()
	cards := make([]CategoryCard, 0, len(categories))
	for _, category := range categories {
		meta, err := models.LookupCategory(category)
		if err != nil {
			continue
		}
		cards = append(cards, CategoryCard{
			Category: category,
			Label:    meta.Label,
			Color:    meta.Color,
			Count:    counts[category],
		})
	}
	return cards
}
