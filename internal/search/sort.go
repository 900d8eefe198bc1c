package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"marquee/internal/domain"
)

// SortItems returns a sorted copy of items. SortRelevance preserves
// the upstream order; year sorts are numeric with non-numeric years
// ("Unknown") ordered below all numeric years; title sort uses
// locale-aware, case-insensitive collation.
func SortItems(items []*domain.CatalogItem, by domain.SortOption) []*domain.CatalogItem {
	sorted := make([]*domain.CatalogItem, len(items))
	copy(sorted, items)

	switch by {
	case domain.SortYearDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessByYear(sorted[i], sorted[j], true)
		})
	case domain.SortYearAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessByYear(sorted[i], sorted[j], false)
		})
	case domain.SortTitle:
		// Collators are not safe for concurrent use, so build one per sort.
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	}

	return sorted
}

// lessByYear orders numerically parseable years first (descending or
// ascending), pushing non-numeric years to the end either way.
func lessByYear(a, b *domain.CatalogItem, desc bool) bool {
	ya, aOK := a.NumericYear()
	yb, bOK := b.NumericYear()

	switch {
	case aOK && bOK:
		if desc {
			return ya > yb
		}
		return ya < yb
	case aOK:
		return true
	default:
		return false
	}
}
