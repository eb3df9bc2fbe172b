package controllers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func TestWriteReportsCSV(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	reports := []models.Report{
		{
			ID:          "r1",
			Category:    models.CATEGORY_HEAVY_TRAFFIC,
			Description: "Jam on the bridge",
			Location:    "Nicosia",
			Reporter:    models.Reporter{ID: "u1", Email: "maria@trafeek.app"},
			Upvotes:     5,
			Comments: []models.Comment{
				{AuthorID: "u2", Text: "still stuck"},
				{AuthorID: "u3", Text: "cleared now"},
			},
			CreatedAt: created,
		},
		{
			ID:        "r2",
			Category:  models.CATEGORY_FLOOD,
			Reporter:  models.Reporter{ID: "u4", Email: "kostas@trafeek.app"},
			CreatedAt: created,
		},
	}

	data, err := writeReportsCSV(reports)
	require.NoError(t, err)

	bom := []byte{0xEF, 0xBB, 0xBF}
	assert.True(t, bytes.HasPrefix(data, bom), "spreadsheet imports need the UTF-8 BOM")
	assert.Contains(t, string(data), "\r\n")

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom)))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Category", "Description", "Location", "Reporter", "Upvotes", "Comments", "Engagement", "Created At"}, records[0])
	assert.Equal(t, []string{"r1", "heavy-traffic", "Jam on the bridge", "Nicosia", "maria@trafeek.app", "5", "2", "7", "2025-06-01T08:30:00Z"}, records[1])
	assert.Equal(t, []string{"r2", "flood", "", "", "kostas@trafeek.app", "0", "0", "0", "2025-06-01T08:30:00Z"}, records[2])
}

func TestWriteReportsCSV_Empty(t *testing.T) {
	data, err := writeReportsCSV(nil)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "an empty export still carries the header row")
}

func TestExportFileName(t *testing.T) {
	name := exportFileName(ExportKindRiders)

	assert.True(t, strings.HasPrefix(name, "trafeek_rider_performance_"), name)
	assert.True(t, strings.HasSuffix(name, ".csv"), name)

	stamp := strings.TrimSuffix(strings.TrimPrefix(name, "trafeek_rider_performance_"), ".csv")
	_, err := time.Parse("20060102_150405", stamp)
	require.NoError(t, err)
}
