package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/domain"
	"marquee/internal/search"
	"marquee/internal/state"
)

// view identifies the active screen.
type view int

const (
	viewHome view = iota
	viewSearch
	viewFavorites
	viewDetail
)

// Model is the root Bubble Tea model.
type Model struct {
	svc   *search.Service
	store *state.Store
	keys  keyMap

	stateCh <-chan state.AppState
	snap    state.AppState
	theme   Theme

	view     view
	prevView view
	cursor   int

	input    textinput.Model // Search term entry
	favInput textinput.Model // Favorites filter
	spin     spinner.Model

	suggestions []*domain.CatalogItem

	width  int
	height int
}

// NewModel creates the root model wired to the orchestrator and store.
func NewModel(svc *search.Service, store *state.Store) Model {
	input := textinput.New()
	input.Placeholder = "Search movies and shows..."
	input.CharLimit = 120
	input.Focus()

	favInput := textinput.New()
	favInput.Placeholder = "Filter favorites..."
	favInput.CharLimit = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	snap := store.Snapshot()
	return Model{
		svc:      svc,
		store:    store,
		keys:     defaultKeyMap(),
		stateCh:  store.Subscribe(),
		snap:     snap,
		theme:    themeFor(snap.Theme),
		view:     viewHome,
		cursor:   -1,
		input:    input,
		favInput: favInput,
		spin:     spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		textinput.Blink,
		waitForState(m.stateCh),
		m.loadFeedsCmd(),
	)
}

// === Commands ===

func (m Model) loadFeedsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		svc.LoadFeeds(context.Background())
		return nil
	}
}

func (m Model) searchNowCmd(term string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		svc.SearchNow(context.Background(), term)
		return nil
	}
}

func (m Model) loadMoreCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		svc.LoadMore(context.Background())
		return nil
	}
}

// suggestionsMsg carries related titles for the detail view.
type suggestionsMsg []*domain.CatalogItem

func (m Model) openDetailCmd(item *domain.CatalogItem) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		svc.LoadDetails(context.Background(), item.ID)
		return suggestionsMsg(svc.Suggestions(context.Background(), item))
	}
}

// === Update ===

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.snap = state.AppState(msg)
		m.theme = themeFor(m.snap.Theme)
		m.clampCursor()
		return m, waitForState(m.stateCh)

	case suggestionsMsg:
		m.suggestions = msg
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		if m.snap.Theme == "dark" {
			m.store.SetTheme("light")
		} else {
			m.store.SetTheme("dark")
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.view = viewHome
		m.cursor = -1
		return m, m.loadFeedsCmd()

	case key.Matches(msg, m.keys.Search):
		if m.view != viewSearch {
			m.view = viewSearch
			m.cursor = -1
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.FavoritesView):
		m.view = viewFavorites
		m.cursor = -1
		m.favInput.Focus()
		return m, textinput.Blink
	}

	switch m.view {
	case viewHome:
		return m.updateHome(msg)
	case viewSearch:
		return m.updateSearch(msg)
	case viewFavorites:
		return m.updateFavorites(msg)
	case viewDetail:
		return m.updateDetail(msg)
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.homeItems()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(items))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(items))
	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(items) {
			return m.openDetail(items[m.cursor])
		}
	case key.Matches(msg, m.keys.ToggleFav):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.svc.ToggleFavorite(items[m.cursor])
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	showingHistory := m.input.Value() == "" && len(m.snap.SearchHistory) > 0

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewHome
		m.cursor = -1
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, m.searchListLen(showingHistory))
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, m.searchListLen(showingHistory))
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if showingHistory && m.cursor >= 0 {
			history := filterHistory(m.snap.SearchHistory, m.input.Value())
			if m.cursor < len(history) {
				term := history[m.cursor]
				m.input.SetValue(term)
				m.cursor = -1
				return m, m.searchNowCmd(term)
			}
		}
		if m.cursor >= 0 && m.cursor < len(m.snap.Results) {
			return m.openDetail(m.snap.Results[m.cursor])
		}
		return m, m.searchNowCmd(m.input.Value())

	case key.Matches(msg, m.keys.LoadMore):
		return m, m.loadMoreCmd()

	case key.Matches(msg, m.keys.ToggleFav):
		if m.cursor >= 0 && m.cursor < len(m.snap.Results) {
			m.svc.ToggleFavorite(m.snap.Results[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.Filters):
		m.store.ToggleFilterPanel()
		return m, nil

	case key.Matches(msg, m.keys.CycleType):
		m.cycleType()
		return m, m.research()

	case key.Matches(msg, m.keys.CycleSort):
		m.cycleSort()
		return m, m.research()

	case key.Matches(msg, m.keys.ClearHistory):
		if showingHistory {
			m.store.ClearSearchHistory()
			m.cursor = -1
		}
		return m, nil
	}

	// Everything else edits the term
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.cursor = -1
		m.svc.SetTerm(value)
	}
	return m, cmd
}

func (m Model) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := newFavoritesIndex(m.snap.Favorites).filter(m.favInput.Value())

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewHome
		m.cursor = -1
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(filtered))
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(filtered))
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(filtered) {
			return m.openDetail(filtered[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFav):
		if m.cursor >= 0 && m.cursor < len(filtered) {
			m.svc.ToggleFavorite(filtered[m.cursor])
			m.clampCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.favInput.Value()
	m.favInput, cmd = m.favInput.Update(msg)
	if m.favInput.Value() != before {
		m.cursor = -1
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.svc.CloseDetails()
		m.suggestions = nil
		m.view = m.prevView
		return m, nil

	case key.Matches(msg, m.keys.ToggleFav):
		if item := m.snap.SelectedItem; item != nil {
			m.svc.ToggleFavorite(item)
		}
		return m, nil
	}
	return m, nil
}

// === Helpers ===

func (m *Model) openDetail(item *domain.CatalogItem) (tea.Model, tea.Cmd) {
	m.prevView = m.view
	m.view = viewDetail
	m.suggestions = nil
	return *m, m.openDetailCmd(item)
}

func (m *Model) moveCursor(delta, listLen int) {
	if listLen == 0 {
		m.cursor = -1
		return
	}
	m.cursor += delta
	if m.cursor < -1 {
		m.cursor = listLen - 1
	}
	if m.cursor >= listLen {
		m.cursor = -1
	}
}

func (m *Model) clampCursor() {
	var listLen int
	switch m.view {
	case viewHome:
		listLen = len(m.homeItems())
	case viewSearch:
		listLen = len(m.snap.Results)
	case viewFavorites:
		listLen = len(newFavoritesIndex(m.snap.Favorites).filter(m.favInput.Value()))
	}
	if m.cursor >= listLen {
		m.cursor = listLen - 1
	}
}

// homeItems flattens both feeds for cursor navigation.
func (m Model) homeItems() []*domain.CatalogItem {
	items := make([]*domain.CatalogItem, 0, len(m.snap.Trending)+len(m.snap.NewReleases))
	items = append(items, m.snap.Trending...)
	items = append(items, m.snap.NewReleases...)
	return items
}

func (m Model) searchListLen(showingHistory bool) int {
	if showingHistory {
		return len(filterHistory(m.snap.SearchHistory, m.input.Value()))
	}
	return len(m.snap.Results)
}

// research re-runs the current search after a filter change.
func (m Model) research() tea.Cmd {
	term := m.input.Value()
	if search.ValidTerm(term) {
		return m.searchNowCmd(term)
	}
	return nil
}

func (m *Model) cycleType() {
	var next domain.MediaType
	switch m.snap.Filters.Type {
	case "":
		next = domain.MediaTypeMovie
	case domain.MediaTypeMovie:
		next = domain.MediaTypeSeries
	default:
		next = ""
	}
	m.store.SetFilters(domain.FilterPatch{Type: &next})
}

func (m *Model) cycleSort() {
	var next domain.SortOption
	switch m.snap.Filters.SortBy {
	case domain.SortRelevance:
		next = domain.SortYearDesc
	case domain.SortYearDesc:
		next = domain.SortYearAsc
	case domain.SortYearAsc:
		next = domain.SortTitle
	default:
		next = domain.SortRelevance
	}
	m.store.SetFilters(domain.FilterPatch{SortBy: &next})
}
