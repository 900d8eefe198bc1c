package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/domain"
)

func TestFavoritesRoundTrip(t *testing.T) {
	s, err := NewUserDataStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Favorites()
	assert.False(t, ok, "fresh store has no favorites slot")

	favorites := []*domain.CatalogItem{
		{ID: "tt1375666", Title: "Inception", Year: "2010", Type: domain.MediaTypeMovie},
		{ID: "tt0903747", Title: "Breaking Bad", Year: "2008–2013", Type: domain.MediaTypeSeries},
	}
	require.NoError(t, s.SaveFavorites(favorites))

	got, ok := s.Favorites()
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "Inception", got[0].Title)
	assert.Equal(t, domain.MediaTypeSeries, got[1].Type)
}

func TestThemePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewUserDataStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveTheme("light"))
	require.NoError(t, s.Close())

	reopened, err := NewUserDataStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	theme, ok := reopened.Theme()
	require.True(t, ok)
	assert.Equal(t, "light", theme)
}

func TestHistoryClear(t *testing.T) {
	s, err := NewUserDataStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveHistory([]string{"batman", "inception"}))
	terms, ok := s.History()
	require.True(t, ok)
	assert.Equal(t, []string{"batman", "inception"}, terms)

	require.NoError(t, s.ClearHistory())
	_, ok = s.History()
	assert.False(t, ok)
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewUserDataStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTheme("dark"))
	theme, ok := s.Theme()
	require.True(t, ok)
	assert.Equal(t, "dark", theme)
}
