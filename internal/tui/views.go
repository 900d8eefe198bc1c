package tui

import (
	"fmt"
	"strings"

	"marquee/internal/domain"
)

const maxVisibleRows = 12

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.view {
	case viewHome:
		m.renderHome(&b)
	case viewSearch:
		m.renderSearch(&b)
	case viewFavorites:
		m.renderFavorites(&b)
	case viewDetail:
		m.renderDetail(&b)
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) renderHome(b *strings.Builder) {
	b.WriteString(m.theme.Title.Render("Marquee"))
	b.WriteString("\n\n")

	offset := 0
	m.renderFeed(b, "Trending", m.snap.Trending, m.snap.LoadingTrending, m.snap.TrendingError, offset)
	offset += len(m.snap.Trending)
	b.WriteString("\n")
	m.renderFeed(b, "New Releases", m.snap.NewReleases, m.snap.LoadingNewReleases, m.snap.NewReleasesError, offset)
}

func (m Model) renderFeed(b *strings.Builder, title string, items []*domain.CatalogItem, loading bool, feedErr string, offset int) {
	b.WriteString(m.theme.Subtitle.Render(title))
	b.WriteString("\n")

	switch {
	case loading:
		b.WriteString(m.theme.Dim.Render(m.spin.View() + " Loading..."))
		b.WriteString("\n")
	case feedErr != "":
		b.WriteString(m.theme.Error.Render(feedErr))
		b.WriteString("\n")
	case len(items) == 0:
		b.WriteString(m.theme.Dim.Render("Nothing here yet."))
		b.WriteString("\n")
	default:
		for i, item := range items {
			m.renderItemRow(b, item, offset+i == m.cursor)
		}
	}
}

func (m Model) renderSearch(b *strings.Builder) {
	b.WriteString(m.theme.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.snap.ShowFilters {
		m.renderFilterPanel(b)
	}

	if m.input.Value() == "" && len(m.snap.SearchHistory) > 0 {
		m.renderHistory(b)
		return
	}

	switch {
	case m.snap.Loading && len(m.snap.Results) == 0:
		b.WriteString(m.theme.Dim.Render(m.spin.View() + " Searching..."))
		b.WriteString("\n")
	case m.snap.Error != "":
		b.WriteString(m.theme.Error.Render(m.snap.Error))
		b.WriteString("\n")
	case len(m.snap.Results) == 0 && m.snap.SearchTerm != "":
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("No results for %q.", m.snap.SearchTerm)))
		b.WriteString("\n")
	default:
		m.renderResults(b)
	}
}

func (m Model) renderResults(b *strings.Builder) {
	start, end := m.window(len(m.snap.Results))
	for i := start; i < end; i++ {
		m.renderItemRow(b, m.snap.Results[i], i == m.cursor)
	}

	if len(m.snap.Results) > 0 {
		b.WriteString("\n")
		counter := fmt.Sprintf("%d of %d results", len(m.snap.Results), m.snap.TotalResults)
		if m.snap.Loading {
			counter += "  " + m.spin.View() + " loading more..."
		} else if m.snap.HasMore {
			counter += "  (ctrl+l for more)"
		}
		b.WriteString(m.theme.Dim.Render(counter))
		b.WriteString("\n")
	}
}

func (m Model) renderHistory(b *strings.Builder) {
	history := filterHistory(m.snap.SearchHistory, m.input.Value())
	if len(history) == 0 {
		return
	}

	b.WriteString(m.theme.Subtitle.Render("Recent searches"))
	b.WriteString(m.theme.Dim.Render("  (ctrl+x to clear)"))
	b.WriteString("\n")
	for i, term := range history {
		line := "  " + term
		if i == m.cursor {
			line = m.theme.Selected.Render("> " + term)
		} else {
			line = m.theme.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (m Model) renderFilterPanel(b *strings.Builder) {
	typeLabel := "all"
	if m.snap.Filters.Type != "" {
		typeLabel = m.snap.Filters.Type.String()
	}
	sortLabel := string(m.snap.Filters.SortBy)
	if sortLabel == "" {
		sortLabel = string(domain.SortRelevance)
	}

	panel := fmt.Sprintf("type: %s (ctrl+y)   sort: %s (ctrl+o)", typeLabel, sortLabel)
	b.WriteString(m.theme.PanelLine.Render(panel))
	b.WriteString("\n\n")
}

func (m Model) renderFavorites(b *strings.Builder) {
	b.WriteString(m.theme.Title.Render("Favorites"))
	b.WriteString("\n\n")
	b.WriteString(m.favInput.View())
	b.WriteString("\n\n")

	filtered := newFavoritesIndex(m.snap.Favorites).filter(m.favInput.Value())
	if len(filtered) == 0 {
		if len(m.snap.Favorites) == 0 {
			b.WriteString(m.theme.Dim.Render("No favorites yet. Press ctrl+s on any title to add one."))
		} else {
			b.WriteString(m.theme.Dim.Render("No favorites match."))
		}
		b.WriteString("\n")
		return
	}

	start, end := m.window(len(filtered))
	for i := start; i < end; i++ {
		m.renderItemRow(b, filtered[i], i == m.cursor)
	}
}

func (m Model) renderDetail(b *strings.Builder) {
	if m.snap.LoadingDetails {
		b.WriteString(m.theme.Dim.Render(m.spin.View() + " Loading details..."))
		b.WriteString("\n")
		return
	}
	if m.snap.DetailsError != "" {
		b.WriteString(m.theme.Error.Render(m.snap.DetailsError))
		b.WriteString("\n")
		return
	}
	item := m.snap.SelectedItem
	if item == nil {
		b.WriteString(m.theme.Dim.Render("Nothing selected."))
		b.WriteString("\n")
		return
	}

	title := item.Title
	if m.snap.IsFavorite(item.ID) {
		title += " " + m.theme.Favorite.Render("★")
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(item.Description()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Normal.Render(item.Plot))
	b.WriteString("\n\n")

	m.renderDetailField(b, "Rating", item.Rating)
	m.renderDetailField(b, "Runtime", item.FormattedRuntime())
	m.renderDetailField(b, "Genre", item.Genre)
	m.renderDetailField(b, "Director", item.Director)
	m.renderDetailField(b, "Actors", item.Actors)
	m.renderDetailField(b, "Released", item.Released)
	m.renderDetailField(b, "Awards", item.Awards)
	m.renderDetailField(b, "Box Office", item.BoxOffice)

	if len(item.Ratings) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Ratings"))
		b.WriteString("\n")
		for _, r := range item.Ratings {
			b.WriteString(m.theme.Normal.Render(fmt.Sprintf("  %s: %s", r.Source, r.Value)))
			b.WriteString("\n")
		}
	}

	if len(m.suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("You might also like"))
		b.WriteString("\n")
		for _, s := range m.suggestions {
			b.WriteString(m.theme.Normal.Render(fmt.Sprintf("  %s (%s)", s.Title, s.Year)))
			b.WriteString("\n")
		}
	}
}

func (m Model) renderDetailField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(m.theme.Badge.Render(label + ": "))
	b.WriteString(m.theme.Normal.Render(value))
	b.WriteString("\n")
}

func (m Model) renderItemRow(b *strings.Builder, item *domain.CatalogItem, selected bool) {
	marker := "  "
	if selected {
		marker = "> "
	}

	fav := " "
	if m.snap.IsFavorite(item.ID) {
		fav = m.theme.Favorite.Render("★")
	}

	line := fmt.Sprintf("%s (%s) [%s]", item.Title, item.Year, item.Type)
	if selected {
		line = m.theme.Selected.Render(marker + line)
	} else {
		line = m.theme.Normal.Render(marker + line)
	}
	b.WriteString(fav)
	b.WriteString(line)
	b.WriteString("\n")
}

// window keeps the cursor visible within a fixed row budget.
func (m Model) window(total int) (start, end int) {
	if total <= maxVisibleRows {
		return 0, total
	}
	start = 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end = start + maxVisibleRows
	if end > total {
		end = total
	}
	return start, end
}

func (m Model) statusBar() string {
	var hints []string
	switch m.view {
	case viewHome:
		hints = []string{"/ search", "ctrl+f favorites", "ctrl+t theme", "ctrl+c quit"}
	case viewSearch:
		hints = []string{"enter select/search", "ctrl+g filters", "ctrl+l more", "ctrl+s favorite", "esc back"}
	case viewFavorites:
		hints = []string{"enter open", "ctrl+s remove", "esc back"}
	case viewDetail:
		hints = []string{"ctrl+s favorite", "esc back"}
	}
	return m.theme.StatusBar.Render(strings.Join(hints, " · "))
}
