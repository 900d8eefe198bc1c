package domain

import "context"

// CatalogRepository provides access to the remote movie/show catalog.
// Implementations cache responses; identical queries inside the cache
// window must not hit the network a second time.
type CatalogRepository interface {
	// Search returns one page of results for a term. A term with
	// fewer than 2 trimmed characters fails with *ValidationError.
	// Zero upstream matches yield an empty page, not an error.
	Search(ctx context.Context, term string, filters Filters, page int) (*SearchPage, error)

	// GetDetails returns the full record for an item, including plot
	// and per-source ratings. An empty id fails with *ValidationError.
	GetDetails(ctx context.Context, id string) (*CatalogItem, error)

	// Suggestions returns up to six items related to a title,
	// excluding the item identified by excludeID.
	Suggestions(ctx context.Context, title, excludeID string) ([]*CatalogItem, error)

	// ClearCache discards all cached responses. Safe to call at any
	// time; in-flight requests are unaffected.
	ClearCache()
}

// UserDataStore persists the user-owned slices of application state:
// favorites, search history, and theme. Reads report ok=false when
// the slot has never been written.
type UserDataStore interface {
	Favorites() ([]*CatalogItem, bool)
	SaveFavorites(items []*CatalogItem) error

	History() ([]string, bool)
	SaveHistory(terms []string) error
	ClearHistory() error

	Theme() (string, bool)
	SaveTheme(name string) error

	Close() error
}
