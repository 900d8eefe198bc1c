package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"marquee/internal/domain"
	"marquee/internal/state"
)

const (
	// DefaultDebounce is the quiescence window before an edited
	// search term is queried automatically.
	DefaultDebounce = 300 * time.Millisecond

	minTermLen = 2
)

// Service bridges user input timing to the catalog client and the
// state store: it debounces term edits, enforces the pagination
// contract, sorts fetched pages, and guards against stale responses
// overwriting newer ones via a monotonic sequence number.
type Service struct {
	repo     domain.CatalogRepository
	store    *state.Store
	logger   *slog.Logger
	debounce time.Duration

	timerMu sync.Mutex
	timer   *time.Timer

	// Sequence guard: a response is applied only if its sequence is
	// newer than the last applied one. Shared between fresh searches
	// and load-more so a late page from an old term can never land on
	// top of a newer term's results.
	seq         atomic.Uint64
	lastApplied atomic.Uint64

	loadingMore atomic.Bool
}

// NewService creates the search orchestrator. A zero debounce falls
// back to DefaultDebounce.
func NewService(repo domain.CatalogRepository, store *state.Store, debounce time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Service{
		repo:     repo,
		store:    store,
		logger:   logger,
		debounce: debounce,
	}
}

// ValidTerm reports whether a term qualifies for querying: at least
// two runes after trimming surrounding whitespace.
func ValidTerm(term string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(term)) >= minTermLen
}

// SetTerm records a term edit and (re)starts the debounce timer. Each
// edit cancels any pending query; only the latest term after the
// quiescence window is queried. Terms under the minimum length never
// auto-query, and clearing the term resets the result view.
func (s *Service) SetTerm(term string) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(term) == "" {
		// Invalidate any in-flight query so a late response cannot
		// repopulate the cleared view.
		s.lastApplied.Store(s.seq.Add(1))
		s.store.ResetSearch()
		return
	}

	s.store.SetSearchTerm(term)
	if !ValidTerm(term) {
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.runSearch(context.Background(), term, 1, false)
	})
}

// SearchNow performs an immediate fresh search, bypassing the
// debounce (enter key, history selection). Invalid terms surface a
// validation message in the error slot instead of querying.
func (s *Service) SearchNow(ctx context.Context, term string) {
	if !ValidTerm(term) {
		s.store.SetError("Please enter at least 2 characters")
		return
	}

	s.timerMu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerMu.Unlock()

	s.store.SetSearchTerm(term)
	s.runSearch(ctx, term, 1, false)
}

// LoadMore fetches the next page. It is a no-op unless more results
// exist and no search is in flight; concurrent triggers while a
// request is outstanding are suppressed.
func (s *Service) LoadMore(ctx context.Context) {
	snap := s.store.Snapshot()
	if !snap.HasMore || snap.Loading {
		return
	}
	if !s.loadingMore.CompareAndSwap(false, true) {
		return
	}
	defer s.loadingMore.Store(false)

	s.runSearch(ctx, snap.SearchTerm, snap.CurrentPage+1, true)
}

// runSearch issues one catalog query and merges the outcome into
// state, unless a newer query has already been applied.
func (s *Service) runSearch(ctx context.Context, term string, page int, append bool) {
	seq := s.seq.Add(1)

	// Clear the error slot before raising the loading flag: clearing
	// an error also drops loading, so the reverse order would leave a
	// fresh search invisible to the loading flag.
	if !append {
		s.store.SetError("")
	}
	s.store.SetLoading(true)

	filters := s.store.Snapshot().Filters
	result, err := s.repo.Search(ctx, term, filters, page)
	if err != nil {
		if s.stale(seq) {
			return
		}
		s.lastApplied.Store(seq)
		s.logger.Warn("search failed", "term", term, "page", page, "error", err)
		s.store.SetError(err.Error())
		return
	}

	sorted := SortItems(result.Items, filters.SortBy)

	if s.stale(seq) {
		s.logger.Debug("discarding stale search response", "term", term, "page", page)
		return
	}
	s.lastApplied.Store(seq)

	if append {
		s.store.AppendResults(sorted, page)
	} else {
		s.store.SetResults(sorted, result.TotalResults, page)
		s.store.AddSearchHistory(strings.TrimSpace(term))
	}
	s.logger.Debug("search applied", "term", term, "page", page, "results", len(sorted))
}

// stale reports whether a newer response has already been applied.
func (s *Service) stale(seq uint64) bool {
	return seq <= s.lastApplied.Load()
}

// LoadDetails fetches the full record for an item and selects it.
func (s *Service) LoadDetails(ctx context.Context, id string) {
	s.store.SetDetailsError("")
	s.store.SetLoadingDetails(true)

	item, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		s.logger.Warn("details fetch failed", "id", id, "error", err)
		s.store.SetDetailsError(err.Error())
		return
	}

	s.store.SetLoadingDetails(false)
	s.store.SetSelectedItem(item)
}

// CloseDetails deselects the current item.
func (s *Service) CloseDetails() {
	s.store.SetSelectedItem(nil)
	s.store.SetDetailsError("")
}

// ToggleFavorite adds the item to favorites, or removes it if already
// present.
func (s *Service) ToggleFavorite(item *domain.CatalogItem) {
	if s.store.Snapshot().IsFavorite(item.ID) {
		s.store.RemoveFavorite(item.ID)
	} else {
		s.store.AddFavorite(item)
	}
}

// Suggestions returns related titles for the selected item. Failures
// degrade to an empty list; suggestions are decoration, not state.
func (s *Service) Suggestions(ctx context.Context, item *domain.CatalogItem) []*domain.CatalogItem {
	related, err := s.repo.Suggestions(ctx, item.Title, item.ID)
	if err != nil {
		s.logger.Debug("suggestions unavailable", "title", item.Title, "error", err)
		return nil
	}
	return related
}
