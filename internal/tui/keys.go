package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the application key bindings.
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Back          key.Binding
	Quit          key.Binding
	Search        key.Binding
	Home          key.Binding
	FavoritesView key.Binding
	ToggleFav     key.Binding
	LoadMore      key.Binding
	Filters       key.Binding
	CycleType     key.Binding
	CycleSort     key.Binding
	ToggleTheme   key.Binding
	ClearHistory  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Home:          key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "home")),
		FavoritesView: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "favorites")),
		ToggleFav:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "toggle favorite")),
		LoadMore:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load more")),
		Filters:       key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "filters")),
		CycleType:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "cycle type")),
		CycleSort:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "cycle sort")),
		ToggleTheme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		ClearHistory:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
	}
}
