package reportlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func comments(n int) []models.Comment {
	out := make([]models.Comment, n)
	for i := range out {
		out[i] = models.Comment{ID: "c", AuthorID: "u", Text: "t"}
	}
	return out
}

func sampleReports() []models.Report {
	return []models.Report{
		{
			ID:          "r1",
			Category:    models.CATEGORY_FLOOD,
			Description: "Road flood near bridge",
			Location:    "Nicosia",
			Reporter:    models.Reporter{ID: "u1", Email: "rider.one@trafeek.app"},
			Upvotes:     5,
			Comments:    comments(0),
		},
		{
			ID:          "r2",
			Category:    models.CATEGORY_ACCIDENT,
			Description: "Two cars collided at the junction",
			Location:    "Kyrenia Harbour",
			Reporter:    models.Reporter{ID: "u2", Email: "Maria@Trafeek.app"},
			Upvotes:     1,
			Comments:    comments(4),
		},
		{
			ID:          "r3",
			Category:    models.CATEGORY_CONSTRUCTION,
			Description: "Lane closed for roadworks",
			Reporter:    models.Reporter{ID: "u3", Email: "third@trafeek.app"},
			Upvotes:     3,
			Comments:    comments(2),
		},
	}
}

func ids(reports []models.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestRefine_NoOptionsPreservesOrder(t *testing.T) {
	base := sampleReports()

	got := Refine(base, Options{})

	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(got))
}

func TestRefine_EmptyInput(t *testing.T) {
	assert.Empty(t, Refine(nil, Options{Search: "flood", Sort: SortMostUpvoted}))
	assert.Empty(t, Refine([]models.Report{}, Options{}))
}

func TestRefine_SearchMatchesAllThreeFields(t *testing.T) {
	base := sampleReports()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"description match mixed case", "FLOOD", []string{"r1"}},
		{"description match lower case", "flood", []string{"r1"}},
		{"location match", "harbour", []string{"r2"}},
		{"reporter email match case-insensitive", "maria@", []string{"r2"}},
		{"no match", "tornado", []string{}},
		{"empty search keeps everything", "", []string{"r1", "r2", "r3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Refine(base, Options{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRefine_LocationFilter(t *testing.T) {
	base := sampleReports()

	// r3 has no location name and must never match a non-empty location filter.
	got := Refine(base, Options{Location: "nicosia"})
	assert.Equal(t, []string{"r1"}, ids(got))

	got = Refine(base, Options{Location: "o"})
	assert.Equal(t, []string{"r1", "r2"}, ids(got), "r3 lacks a location and stays excluded")

	got = Refine(base, Options{Location: ""})
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(got))
}

func TestRefine_SearchAndLocationCompose(t *testing.T) {
	base := sampleReports()

	got := Refine(base, Options{Search: "trafeek.app", Location: "kyrenia"})
	assert.Equal(t, []string{"r2"}, ids(got))
}

func TestRefine_SortModes(t *testing.T) {
	// upvotes [5,1,3], comment counts [0,4,2]
	base := sampleReports()

	tests := []struct {
		name string
		sort string
		want []string
	}{
		{"none keeps fetch order", SortNone, []string{"r1", "r2", "r3"}},
		{"most upvoted", SortMostUpvoted, []string{"r1", "r3", "r2"}},
		{"most commented", SortMostCommented, []string{"r2", "r3", "r1"}},
		{"high engagement", SortHighEngagement, []string{"r1", "r2", "r3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Refine(base, Options{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRefine_SortIsMonotonic(t *testing.T) {
	base := sampleReports()

	byUpvotes := Refine(base, Options{Sort: SortMostUpvoted})
	for i := 1; i < len(byUpvotes); i++ {
		assert.GreaterOrEqual(t, byUpvotes[i-1].Upvotes, byUpvotes[i].Upvotes)
	}

	byEngagement := Refine(base, Options{Sort: SortHighEngagement})
	for i := 1; i < len(byEngagement); i++ {
		assert.GreaterOrEqual(t, byEngagement[i-1].EngagementScore(), byEngagement[i].EngagementScore())
	}
}

func TestRefine_MissingCountsScoreZero(t *testing.T) {
	base := []models.Report{
		{ID: "a", Description: "x"},
		{ID: "b", Description: "y", Upvotes: 2, Comments: comments(1)},
	}

	got := Refine(base, Options{Sort: SortHighEngagement})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"b", "a"}, ids(got))
	assert.Equal(t, 0, got[1].EngagementScore())
}

func TestRefine_StableOnTies(t *testing.T) {
	base := []models.Report{
		{ID: "a", Upvotes: 2},
		{ID: "b", Upvotes: 2},
		{ID: "c", Upvotes: 2},
	}

	got := Refine(base, Options{Sort: SortMostUpvoted})

	assert.Equal(t, []string{"a", "b", "c"}, ids(got), "ties keep prior order")
}

func TestRefine_DoesNotMutateInput(t *testing.T) {
	base := sampleReports()

	_ = Refine(base, Options{Search: "flood", Sort: SortMostCommented})
	_ = Refine(base, Options{Sort: SortMostCommented})

	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(base), "input order must survive refinement")
}

func TestRefine_FilterThenClearRestoresBaseOrder(t *testing.T) {
	base := sampleReports()

	filtered := Refine(base, Options{Search: "flood"})
	require.Equal(t, []string{"r1"}, ids(filtered))

	cleared := Refine(base, Options{Search: ""})
	assert.Equal(t, ids(base), ids(cleared))
}

func TestRefine_Idempotent(t *testing.T) {
	base := sampleReports()
	opts := Options{Search: "a", Location: "", Sort: SortHighEngagement}

	first := Refine(base, opts)
	second := Refine(base, opts)

	assert.Equal(t, ids(first), ids(second))
}

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, SortNone, NormalizeSort(""))
	assert.Equal(t, SortNone, NormalizeSort("bogus"))
	assert.Equal(t, SortMostUpvoted, NormalizeSort(SortMostUpvoted))
	assert.Equal(t, []string{SortNone, SortHighEngagement, SortMostUpvoted, SortMostCommented}, SortModes())
}
