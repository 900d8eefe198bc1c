package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for one color scheme.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Badge     lipgloss.Style
	Favorite  lipgloss.Style
	PanelLine lipgloss.Style
	StatusBar lipgloss.Style
}

func darkTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211")),
		Subtitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PanelLine: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func lightTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")),
		Subtitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		PanelLine: lipgloss.NewStyle().Foreground(lipgloss.Color("55")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

// themeFor maps a persisted theme name to its style set.
func themeFor(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}
