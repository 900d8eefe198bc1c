package tui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"marquee/internal/domain"
)

// favoritesIndex implements sahilm/fuzzy.Source for allocation-free
// fuzzy filtering of the favorites list.
type favoritesIndex struct {
	items       []*domain.CatalogItem
	lowerTitles []string
}

func newFavoritesIndex(items []*domain.CatalogItem) *favoritesIndex {
	idx := &favoritesIndex{items: items, lowerTitles: make([]string, len(items))}
	for i, item := range items {
		idx.lowerTitles[i] = strings.ToLower(item.Title)
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *favoritesIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *favoritesIndex) Len() int { return len(idx.items) }

// filter returns the favorites matching query, best matches first.
// An empty query returns everything in insertion order.
func (idx *favoritesIndex) filter(query string) []*domain.CatalogItem {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return idx.items
	}

	matches := sahilm.FindFrom(query, idx)
	results := make([]*domain.CatalogItem, 0, len(matches))
	for _, match := range matches {
		results = append(results, idx.items[match.Index])
	}
	return results
}

// filterHistory narrows past search terms to those fuzzy-matching the
// current input, preserving most-recent-first order for empty input.
func filterHistory(history []string, input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return history
	}

	ranks := fuzzy.RankFindFold(input, history)
	results := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		results = append(results, rank.Target)
	}
	return results
}
