package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/domain"
)

func titles(items []*domain.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func sortFixture() []*domain.CatalogItem {
	return []*domain.CatalogItem{
		{ID: "1", Title: "Zodiac", Year: "2007"},
		{ID: "2", Title: "arrival", Year: "2016"},
		{ID: "3", Title: "Éloge", Year: domain.UnknownYear},
		{ID: "4", Title: "Blade Runner", Year: "1982"},
		{ID: "5", Title: "Heat", Year: "1995"},
	}
}

func TestSortItemsIsPermutation(t *testing.T) {
	items := sortFixture()

	for _, by := range []domain.SortOption{domain.SortRelevance, domain.SortYearDesc, domain.SortYearAsc, domain.SortTitle} {
		sorted := SortItems(items, by)
		assert.Len(t, sorted, len(items), string(by))
		assert.ElementsMatch(t, items, sorted, string(by))
	}

	// Input order untouched
	assert.Equal(t, "Zodiac", items[0].Title)
}

func TestSortYearDesc(t *testing.T) {
	sorted := SortItems(sortFixture(), domain.SortYearDesc)

	years := make([]string, len(sorted))
	for i, item := range sorted {
		years[i] = item.Year
	}
	assert.Equal(t, []string{"2016", "2007", "1995", "1982", domain.UnknownYear}, years)

	// Non-increasing across consecutive numeric pairs
	for i := 0; i < len(sorted)-1; i++ {
		ya, aOK := sorted[i].NumericYear()
		yb, bOK := sorted[i+1].NumericYear()
		if aOK && bOK {
			assert.GreaterOrEqual(t, ya, yb)
		}
	}
}

func TestSortYearAsc(t *testing.T) {
	sorted := SortItems(sortFixture(), domain.SortYearAsc)

	years := make([]string, len(sorted))
	for i, item := range sorted {
		years[i] = item.Year
	}
	assert.Equal(t, []string{"1982", "1995", "2007", "2016", domain.UnknownYear}, years)
}

func TestSortYearSeriesRange(t *testing.T) {
	items := []*domain.CatalogItem{
		{ID: "1", Title: "The Wire", Year: "2002–2008"},
		{ID: "2", Title: "Chernobyl", Year: "2019"},
	}
	sorted := SortItems(items, domain.SortYearDesc)
	require.Equal(t, "Chernobyl", sorted[0].Title, "series range resolves to its first year")
}

func TestSortTitleLocaleAware(t *testing.T) {
	sorted := SortItems(sortFixture(), domain.SortTitle)
	// Case-insensitive, accent-aware: "arrival" before "Blade Runner",
	// "Éloge" collates with E rather than after Z.
	assert.Equal(t, []string{"arrival", "Blade Runner", "Éloge", "Heat", "Zodiac"}, titles(sorted))
}

func TestSortRelevancePreservesOrder(t *testing.T) {
	items := sortFixture()
	sorted := SortItems(items, domain.SortRelevance)
	assert.Equal(t, titles(items), titles(sorted))
}

func TestSortStability(t *testing.T) {
	items := []*domain.CatalogItem{
		{ID: "a", Title: "First", Year: "2000"},
		{ID: "b", Title: "Second", Year: "2000"},
		{ID: "c", Title: "Third", Year: "2000"},
	}
	sorted := SortItems(items, domain.SortYearDesc)
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(sorted))
}
