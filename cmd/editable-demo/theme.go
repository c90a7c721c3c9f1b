package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/editable/editor"
	"github.com/iw2rmb/editable/internal/config"
)

// styleFromTheme overrides the default editor colors with the configured
// ones. Empty colors keep the defaults.
func styleFromTheme(t config.ThemeConfig) editor.Style {
	st := editor.DefaultStyle()
	if t.Highlight != "" {
		st.ToolbarActive = st.ToolbarActive.Background(lipgloss.Color(t.Highlight))
	}
	if t.Subtle != "" {
		c := lipgloss.Color(t.Subtle)
		st.ToolbarInactive = st.ToolbarInactive.Foreground(c)
		st.Status = st.Status.Foreground(c)
		st.Disabled = st.Disabled.Foreground(c)
	}
	if t.Caret != "" {
		st.Caret = lipgloss.NewStyle().Background(lipgloss.Color(t.Caret)).Foreground(lipgloss.Color("0"))
	}
	return st
}
