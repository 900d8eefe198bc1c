package state

import "marquee/internal/domain"

// Pure transition functions: each takes the current state and returns
// the next one. No transition touches storage; the Store layers
// persistence on top. Keeping these pure makes every state law
// testable without a database fixture.

func withSearchTerm(s AppState, term string) AppState {
	s.SearchTerm = term
	return s
}

func withLoading(s AppState, loading bool) AppState {
	s.Loading = loading
	return s
}

// withError sets the search error slot and force-clears loading.
func withError(s AppState, msg string) AppState {
	s.Error = msg
	s.Loading = false
	return s
}

// withResults replaces the accumulated results with a fresh page.
func withResults(s AppState, items []*domain.CatalogItem, totalResults, page int) AppState {
	s.Results = items
	s.TotalResults = totalResults
	s.CurrentPage = page
	s.HasMore = len(items) < totalResults
	s.Loading = false
	s.Error = ""
	return s
}

// withAppendedResults concatenates a further page onto the results.
func withAppendedResults(s AppState, items []*domain.CatalogItem, page int) AppState {
	merged := make([]*domain.CatalogItem, 0, len(s.Results)+len(items))
	merged = append(merged, s.Results...)
	merged = append(merged, items...)

	s.Results = merged
	s.CurrentPage = page
	s.HasMore = len(merged) < s.TotalResults
	s.Loading = false
	return s
}

func withSelectedItem(s AppState, item *domain.CatalogItem) AppState {
	s.SelectedItem = item
	return s
}

func withLoadingDetails(s AppState, loading bool) AppState {
	s.LoadingDetails = loading
	return s
}

func withDetailsError(s AppState, msg string) AppState {
	s.DetailsError = msg
	s.LoadingDetails = false
	return s
}

func withFilters(s AppState, patch domain.FilterPatch) AppState {
	s.Filters = patch.Apply(s.Filters)
	return s
}

func withFilterPanelToggled(s AppState) AppState {
	s.ShowFilters = !s.ShowFilters
	return s
}

// withFavoriteAdded appends an item unless its id is already present.
func withFavoriteAdded(s AppState, item *domain.CatalogItem) AppState {
	if s.IsFavorite(item.ID) {
		return s
	}
	favorites := make([]*domain.CatalogItem, 0, len(s.Favorites)+1)
	favorites = append(favorites, s.Favorites...)
	favorites = append(favorites, item)
	s.Favorites = favorites
	return s
}

func withFavoriteRemoved(s AppState, id string) AppState {
	favorites := make([]*domain.CatalogItem, 0, len(s.Favorites))
	for _, item := range s.Favorites {
		if item.ID != id {
			favorites = append(favorites, item)
		}
	}
	s.Favorites = favorites
	return s
}

// withHistoryAdded prepends a term, removing any prior occurrence and
// truncating to MaxSearchHistory.
func withHistoryAdded(s AppState, term string) AppState {
	history := make([]string, 0, len(s.SearchHistory)+1)
	history = append(history, term)
	for _, t := range s.SearchHistory {
		if t != term {
			history = append(history, t)
		}
	}
	if len(history) > MaxSearchHistory {
		history = history[:MaxSearchHistory]
	}
	s.SearchHistory = history
	return s
}

func withHistoryCleared(s AppState) AppState {
	s.SearchHistory = nil
	return s
}

func withTheme(s AppState, name string) AppState {
	s.Theme = name
	return s
}

// withSearchReset clears term, results, error, and pagination while
// preserving filters, favorites, history, and theme.
func withSearchReset(s AppState) AppState {
	s.SearchTerm = ""
	s.Results = nil
	s.Error = ""
	s.CurrentPage = 1
	s.TotalResults = 0
	s.HasMore = false
	return s
}

func withLoadingTrending(s AppState, loading bool) AppState {
	s.LoadingTrending = loading
	return s
}

func withTrending(s AppState, items []*domain.CatalogItem) AppState {
	s.Trending = items
	s.LoadingTrending = false
	s.TrendingError = ""
	return s
}

func withTrendingError(s AppState, msg string) AppState {
	s.TrendingError = msg
	s.LoadingTrending = false
	return s
}

func withLoadingNewReleases(s AppState, loading bool) AppState {
	s.LoadingNewReleases = loading
	return s
}

func withNewReleases(s AppState, items []*domain.CatalogItem) AppState {
	s.NewReleases = items
	s.LoadingNewReleases = false
	s.NewReleasesError = ""
	return s
}

func withNewReleasesError(s AppState, msg string) AppState {
	s.NewReleasesError = msg
	s.LoadingNewReleases = false
	return s
}
