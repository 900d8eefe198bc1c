package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/domain"
	"marquee/internal/log"
	"marquee/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	persist, err := store.NewUserDataStore("") // memory-only
	require.NoError(t, err)
	t.Cleanup(func() { persist.Close() })
	return NewStore(persist, "", log.NullLogger())
}

func item(id, title, year string) *domain.CatalogItem {
	return &domain.CatalogItem{ID: id, Title: title, Year: year, Type: domain.MediaTypeMovie}
}

func TestInitialState(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()

	assert.Empty(t, st.SearchTerm)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, DefaultTheme, st.Theme)
	assert.Equal(t, domain.SortRelevance, st.Filters.SortBy)
	assert.False(t, st.HasMore)
}

func TestHasMoreLaw(t *testing.T) {
	s := newTestStore(t)

	page1 := []*domain.CatalogItem{item("1", "A", "2001"), item("2", "B", "2002")}
	s.SetResults(page1, 5, 1)

	st := s.Snapshot()
	assert.True(t, st.HasMore)
	assert.Equal(t, st.HasMore, len(st.Results) < st.TotalResults)

	s.AppendResults([]*domain.CatalogItem{item("3", "C", "2003"), item("4", "D", "2004"), item("5", "E", "2005")}, 2)

	st = s.Snapshot()
	assert.Len(t, st.Results, 5)
	assert.Equal(t, 2, st.CurrentPage)
	assert.False(t, st.HasMore)
	assert.Equal(t, st.HasMore, len(st.Results) < st.TotalResults)
}

func TestSetResultsClearsErrorAndLoading(t *testing.T) {
	s := newTestStore(t)

	s.SetLoading(true)
	s.SetError("boom")
	assert.False(t, s.Snapshot().Loading, "SetError force-clears loading")

	s.SetLoading(true)
	s.SetResults([]*domain.CatalogItem{item("1", "A", "2001")}, 1, 1)

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestAddFavoriteIdempotent(t *testing.T) {
	s := newTestStore(t)
	movie := item("tt1375666", "Inception", "2010")

	s.AddFavorite(movie)
	s.AddFavorite(movie)

	st := s.Snapshot()
	require.Len(t, st.Favorites, 1)
	assert.True(t, st.IsFavorite("tt1375666"))

	s.RemoveFavorite("tt1375666")
	assert.Empty(t, s.Snapshot().Favorites)
}

// countingPersist counts favorites writes on top of a real store.
type countingPersist struct {
	domain.UserDataStore
	favoriteSaves int
}

func (c *countingPersist) SaveFavorites(items []*domain.CatalogItem) error {
	c.favoriteSaves++
	return c.UserDataStore.SaveFavorites(items)
}

func TestDuplicateFavoriteSkipsPersistence(t *testing.T) {
	inner, err := store.NewUserDataStore("")
	require.NoError(t, err)
	t.Cleanup(func() { inner.Close() })

	persist := &countingPersist{UserDataStore: inner}
	s := NewStore(persist, "", log.NullLogger())
	movie := item("tt1375666", "Inception", "2010")

	s.AddFavorite(movie)
	s.AddFavorite(movie)
	s.AddFavorite(movie)

	assert.Equal(t, 1, persist.favoriteSaves, "duplicate adds never rewrite storage")
	require.Len(t, s.Snapshot().Favorites, 1)
}

func TestFavoritesPersisted(t *testing.T) {
	persist, err := store.NewUserDataStore(t.TempDir())
	require.NoError(t, err)

	s := NewStore(persist, "", log.NullLogger())
	s.AddFavorite(item("tt1375666", "Inception", "2010"))

	saved, ok := persist.Favorites()
	require.True(t, ok)
	require.Len(t, saved, 1)
	assert.Equal(t, "Inception", saved[0].Title)
	require.NoError(t, persist.Close())
}

func TestSearchHistoryOrdering(t *testing.T) {
	s := newTestStore(t)

	s.AddSearchHistory("a")
	s.AddSearchHistory("b")
	s.AddSearchHistory("a")

	assert.Equal(t, []string{"a", "b"}, s.Snapshot().SearchHistory)
}

func TestSearchHistoryBounded(t *testing.T) {
	s := newTestStore(t)

	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		s.AddSearchHistory(term)
	}

	history := s.Snapshot().SearchHistory
	assert.Len(t, history, MaxSearchHistory)
	assert.Equal(t, "l", history[0], "most recent term first")
}

func TestClearSearchHistory(t *testing.T) {
	s := newTestStore(t)
	s.AddSearchHistory("batman")
	s.ClearSearchHistory()
	assert.Empty(t, s.Snapshot().SearchHistory)
}

func TestThemeRoundTrip(t *testing.T) {
	dir := t.TempDir()

	persist, err := store.NewUserDataStore(dir)
	require.NoError(t, err)

	s := NewStore(persist, "", log.NullLogger())
	s.SetTheme("light")
	require.NoError(t, persist.Close())

	// A fresh store initialized from the same storage sees the theme
	reopened, err := store.NewUserDataStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	fresh := NewStore(reopened, "", log.NullLogger())
	assert.Equal(t, "light", fresh.Snapshot().Theme)
}

func TestSetFiltersShallowMerge(t *testing.T) {
	s := newTestStore(t)

	year := "2019"
	s.SetFilters(domain.FilterPatch{Year: &year})

	st := s.Snapshot()
	assert.Equal(t, "2019", st.Filters.Year)
	assert.Equal(t, domain.SortRelevance, st.Filters.SortBy, "unpatched fields unchanged")

	sortBy := domain.SortTitle
	s.SetFilters(domain.FilterPatch{SortBy: &sortBy})

	st = s.Snapshot()
	assert.Equal(t, "2019", st.Filters.Year)
	assert.Equal(t, domain.SortTitle, st.Filters.SortBy)
}

func TestResetSearchPreservesUserData(t *testing.T) {
	s := newTestStore(t)

	s.SetSearchTerm("batman")
	s.SetResults([]*domain.CatalogItem{item("1", "Batman", "1989")}, 100, 1)
	s.AddFavorite(item("tt1375666", "Inception", "2010"))
	s.AddSearchHistory("batman")
	s.SetTheme("light")
	year := "1989"
	s.SetFilters(domain.FilterPatch{Year: &year})

	s.ResetSearch()

	st := s.Snapshot()
	assert.Empty(t, st.SearchTerm)
	assert.Empty(t, st.Results)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Zero(t, st.TotalResults)
	assert.False(t, st.HasMore)

	// Deliberately preserved
	assert.Equal(t, "1989", st.Filters.Year)
	assert.Len(t, st.Favorites, 1)
	assert.Equal(t, []string{"batman"}, st.SearchHistory)
	assert.Equal(t, "light", st.Theme)
}

func TestToggleFilterPanel(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Snapshot().ShowFilters)
	s.ToggleFilterPanel()
	assert.True(t, s.Snapshot().ShowFilters)
	s.ToggleFilterPanel()
	assert.False(t, s.Snapshot().ShowFilters)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := newTestStore(t)
	ch := s.Subscribe()

	s.SetSearchTerm("dune")

	snapshot := <-ch
	assert.Equal(t, "dune", snapshot.SearchTerm)
}

func TestHomeFeedTransitions(t *testing.T) {
	s := newTestStore(t)

	s.SetLoadingTrending(true)
	assert.True(t, s.Snapshot().LoadingTrending)

	s.SetTrending([]*domain.CatalogItem{item("1", "Dune", "2024")})
	st := s.Snapshot()
	assert.False(t, st.LoadingTrending)
	assert.Len(t, st.Trending, 1)
	assert.Empty(t, st.TrendingError)

	s.SetLoadingNewReleases(true)
	s.SetNewReleasesError("feed unavailable")
	st = s.Snapshot()
	assert.False(t, st.LoadingNewReleases)
	assert.Equal(t, "feed unavailable", st.NewReleasesError)
}
