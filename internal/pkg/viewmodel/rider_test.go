package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func TestBuildRiderRows(t *testing.T) {
	riders := []models.RiderPerformanceRow{
		{
			Email: "rider@trafeek.app",
			CategoryCounts: map[string]int{
				models.CATEGORY_ACCIDENT:   2,
				models.CATEGORY_CHECKPOINT: 5,
			},
			TotalReports: 7,
		},
		{Email: "quiet@trafeek.app", Name: "Quiet Rider"},
	}

	rows := BuildRiderRows(riders)
	require.Len(t, rows, 2)

	assert.Equal(t, "rider@trafeek.app", rows[0].DisplayName)
	assert.Equal(t, []int{0, 2, 0, 0, 5}, rows[0].CategoryCounts, "counts follow the category display order")

	assert.Equal(t, "Quiet Rider", rows[1].DisplayName)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, rows[1].CategoryCounts, "a nil count map expands to zeros")
}
