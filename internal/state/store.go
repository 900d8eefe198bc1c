package state

import (
	"log/slog"
	"sync"

	"marquee/internal/domain"
)

// Store holds the application state and applies transitions
// atomically. Persistence of the user-data slices (favorites,
// history, theme) runs synchronously with the transition that changes
// them but is best-effort: a storage failure is logged and never
// blocks the in-memory transition. Subscribers receive a snapshot
// after every transition.
type Store struct {
	mu      sync.Mutex
	state   AppState
	persist domain.UserDataStore
	logger  *slog.Logger

	subMu       sync.Mutex
	subscribers []chan AppState
}

// NewStore creates the state container, seeding favorites, history,
// and theme from the user data store. defaultTheme applies when no
// theme has been persisted; an empty defaultTheme falls back to
// DefaultTheme.
func NewStore(persist domain.UserDataStore, defaultTheme string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultTheme == "" {
		defaultTheme = DefaultTheme
	}

	initial := AppState{
		CurrentPage: 1,
		Filters:     domain.Filters{SortBy: domain.SortRelevance},
		Theme:       defaultTheme,
	}
	if favorites, ok := persist.Favorites(); ok {
		initial.Favorites = favorites
	}
	if history, ok := persist.History(); ok {
		initial.SearchHistory = history
	}
	if theme, ok := persist.Theme(); ok {
		initial.Theme = theme
	}

	return &Store{
		state:   initial,
		persist: persist,
		logger:  logger,
	}
}

// Snapshot returns the current state. Slices inside the snapshot are
// shared but never mutated after publication.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers an observer channel. Notifications are dropped
// rather than blocked when the subscriber is slow; the next snapshot
// supersedes the missed one anyway.
func (s *Store) Subscribe() <-chan AppState {
	ch := make(chan AppState, 8)
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subMu.Unlock()
	return ch
}

// apply runs a transition atomically and notifies subscribers.
func (s *Store) apply(fn func(AppState) AppState) AppState {
	s.mu.Lock()
	s.state = fn(s.state)
	snapshot := s.state
	s.mu.Unlock()

	s.subMu.Lock()
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default: // Non-blocking if channel full
		}
	}
	s.subMu.Unlock()

	return snapshot
}

// === Effect runners ===

func (s *Store) persistFavorites(items []*domain.CatalogItem) {
	if err := s.persist.SaveFavorites(items); err != nil {
		s.logger.Warn("failed to persist favorites", "error", err)
	}
}

func (s *Store) persistHistory(terms []string) {
	if err := s.persist.SaveHistory(terms); err != nil {
		s.logger.Warn("failed to persist search history", "error", err)
	}
}

// === Transitions ===

func (s *Store) SetSearchTerm(term string) {
	s.apply(func(st AppState) AppState { return withSearchTerm(st, term) })
}

func (s *Store) SetLoading(loading bool) {
	s.apply(func(st AppState) AppState { return withLoading(st, loading) })
}

// SetError sets the search error slot; it also force-clears loading.
// An empty message clears the slot.
func (s *Store) SetError(msg string) {
	s.apply(func(st AppState) AppState { return withError(st, msg) })
}

func (s *Store) SetResults(items []*domain.CatalogItem, totalResults, page int) {
	s.apply(func(st AppState) AppState { return withResults(st, items, totalResults, page) })
}

func (s *Store) AppendResults(items []*domain.CatalogItem, page int) {
	s.apply(func(st AppState) AppState { return withAppendedResults(st, items, page) })
}

func (s *Store) SetSelectedItem(item *domain.CatalogItem) {
	s.apply(func(st AppState) AppState { return withSelectedItem(st, item) })
}

func (s *Store) SetLoadingDetails(loading bool) {
	s.apply(func(st AppState) AppState { return withLoadingDetails(st, loading) })
}

func (s *Store) SetDetailsError(msg string) {
	s.apply(func(st AppState) AppState { return withDetailsError(st, msg) })
}

func (s *Store) SetFilters(patch domain.FilterPatch) {
	s.apply(func(st AppState) AppState { return withFilters(st, patch) })
}

func (s *Store) ToggleFilterPanel() {
	s.apply(withFilterPanelToggled)
}

// AddFavorite is idempotent: adding an already-favorited id is a
// no-op, including its persistence side effect.
func (s *Store) AddFavorite(item *domain.CatalogItem) {
	var added bool
	snapshot := s.apply(func(st AppState) AppState {
		next := withFavoriteAdded(st, item)
		added = len(next.Favorites) != len(st.Favorites)
		return next
	})
	if added {
		s.persistFavorites(snapshot.Favorites)
	}
}

func (s *Store) RemoveFavorite(id string) {
	snapshot := s.apply(func(st AppState) AppState { return withFavoriteRemoved(st, id) })
	s.persistFavorites(snapshot.Favorites)
}

func (s *Store) AddSearchHistory(term string) {
	snapshot := s.apply(func(st AppState) AppState { return withHistoryAdded(st, term) })
	s.persistHistory(snapshot.SearchHistory)
}

func (s *Store) ClearSearchHistory() {
	s.apply(withHistoryCleared)
	if err := s.persist.ClearHistory(); err != nil {
		s.logger.Warn("failed to clear persisted history", "error", err)
	}
}

func (s *Store) SetTheme(name string) {
	s.apply(func(st AppState) AppState { return withTheme(st, name) })
	if err := s.persist.SaveTheme(name); err != nil {
		s.logger.Warn("failed to persist theme", "error", err)
	}
}

// ResetSearch clears search state while preserving filters,
// favorites, history, and theme.
func (s *Store) ResetSearch() {
	s.apply(withSearchReset)
}

// === Home feed transitions ===

func (s *Store) SetLoadingTrending(loading bool) {
	s.apply(func(st AppState) AppState { return withLoadingTrending(st, loading) })
}

func (s *Store) SetTrending(items []*domain.CatalogItem) {
	s.apply(func(st AppState) AppState { return withTrending(st, items) })
}

func (s *Store) SetTrendingError(msg string) {
	s.apply(func(st AppState) AppState { return withTrendingError(st, msg) })
}

func (s *Store) SetLoadingNewReleases(loading bool) {
	s.apply(func(st AppState) AppState { return withLoadingNewReleases(st, loading) })
}

func (s *Store) SetNewReleases(items []*domain.CatalogItem) {
	s.apply(func(st AppState) AppState { return withNewReleases(st, items) })
}

func (s *Store) SetNewReleasesError(msg string) {
	s.apply(func(st AppState) AppState { return withNewReleasesError(st, msg) })
}
