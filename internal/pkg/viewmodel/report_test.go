package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func TestNewReportRow(t *testing.T) {
	report := models.Report{
		ID:       "r1",
		Category: models.CATEGORY_ACCIDENT,
		Reporter: models.Reporter{ID: "u1", Email: "maria@trafeek.app"},
		Upvotes:  3,
		Comments: []models.Comment{{AuthorID: "u2", Text: "still blocked"}},
	}

	row, err := NewReportRow(report)
	require.NoError(t, err)

	assert.Equal(t, "Accident", row.CategoryLabel)
	assert.Equal(t, "red", row.CategoryColor)
	assert.Equal(t, 1, row.CommentCount)
	assert.Equal(t, 4, row.Engagement)
	assert.Equal(t, "maria@trafeek.app", row.ReporterName, "missing name falls back to the email")
	assert.Contains(t, row.AvatarURL, "gravatar.com/avatar/")
}

func TestNewReportRow_UnknownCategory(t *testing.T) {
	_, err := NewReportRow(models.Report{ID: "r9", Category: "ufo-sighting"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ufo-sighting")
}

func TestBuildReportRows_FailsWholeSet(t *testing.T) {
	reports := []models.Report{
		{ID: "r1", Category: models.CATEGORY_FLOOD},
		{ID: "r2", Category: "not-a-category"},
	}

	rows, err := BuildReportRows(reports)
	require.Error(t, err)
	assert.Nil(t, rows)
}

func TestBuildCategoryCards(t *testing.T) {
	cards := BuildCategoryCards(map[string]int{
		models.CATEGORY_ACCIDENT: 7,
		models.CATEGORY_FLOOD:    2,
	})

	require.Len(t, cards, 5)

	labels := make([]string, 0, len(cards))
	for _, card := range cards {
		labels = append(labels, card.Label)
	}
	assert.Equal(t, []string{"Heavy Traffic", "Accident", "Construction", "Flood", "Checkpoint"}, labels)

	assert.Equal(t, 0, cards[0].Count, "categories missing from the analytics map render as zero")
	assert.Equal(t, 7, cards[1].Count)
	assert.Equal(t, 2, cards[3].Count)
}
