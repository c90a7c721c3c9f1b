package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text     lipgloss.Style
	Caret    lipgloss.Style
	Disabled lipgloss.Style

	ToolbarActive   lipgloss.Style
	ToolbarInactive lipgloss.Style
	Status          lipgloss.Style
}

func DefaultStyle() Style {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:            lipgloss.NewStyle(),
		Caret:           lipgloss.NewStyle().Reverse(true),
		Disabled:        subtle,
		ToolbarActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true),
		ToolbarInactive: subtle,
		Status:          subtle,
	}
}
