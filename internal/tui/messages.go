package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/state"
)

// stateMsg carries a state snapshot published by the store.
type stateMsg state.AppState

// waitForState adapts the store's subscription channel to a Bubble
// Tea message; the command is re-issued after every received snapshot.
func waitForState(ch <-chan state.AppState) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-ch)
	}
}
