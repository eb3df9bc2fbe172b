package viewmodel

import (
	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/utils"
)

// RiderRow contains all information needed for displaying one rider in the
// performance table, including the per-category counts in display order.
type RiderRow struct {
	Rider          models.RiderPerformanceRow
	DisplayName    string
	AvatarURL      string
	CategoryCounts []int
}

// BuildRiderRows maps performance rows for the table. Category counts are
// expanded to the fixed category display order so the template renders
// columns positionally.
func BuildRiderRows(riders []models.RiderPerformanceRow) []RiderRow {
	categories := models.ReportCategories()
	rows := make([]RiderRow, 0, len(riders))
	for _, rider := range riders {
		counts := make([]int, 0, len(categories))
		for _, category := range categories {
			counts = append(counts, rider.CategoryCount(category))
		}

		name := rider.Name
		if name == "" {
			name = rider.Email
		}

		rows = append(rows, RiderRow{
			Rider:          rider,
			DisplayName:    name,
			AvatarURL:      utils.GetGravatarURL(rider.Email, 64),
			CategoryCounts: counts,
		})
	}
	return rows
}
