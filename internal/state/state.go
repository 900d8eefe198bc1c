package state

import "marquee/internal/domain"

// MaxSearchHistory bounds the persisted search-history list.
const MaxSearchHistory = 10

// DefaultTheme is used when nothing is persisted and config is silent.
const DefaultTheme = "dark"

// AppState is the single application state record. Values handed to
// observers are snapshots; slices inside a snapshot are never mutated
// after publication (transitions replace, they don't edit in place).
type AppState struct {
	// Search state
	SearchTerm   string
	Results      []*domain.CatalogItem
	TotalResults int
	CurrentPage  int
	HasMore      bool
	Loading      bool
	Error        string // "" = no error

	// Item details
	SelectedItem   *domain.CatalogItem
	LoadingDetails bool
	DetailsError   string

	// Filters
	Filters     domain.Filters
	ShowFilters bool

	// User data (persisted)
	Favorites     []*domain.CatalogItem
	SearchHistory []string
	Theme         string

	// Home feeds
	Trending           []*domain.CatalogItem
	LoadingTrending    bool
	TrendingError      string
	NewReleases        []*domain.CatalogItem
	LoadingNewReleases bool
	NewReleasesError   string
}

// IsFavorite reports whether an item id is in the favorites list.
func (s AppState) IsFavorite(id string) bool {
	for _, item := range s.Favorites {
		if item.ID == id {
			return true
		}
	}
	return false
}
