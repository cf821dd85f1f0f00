package termsurface

import "github.com/charmbracelet/lipgloss"

// Style controls the surface rendering.
type Style struct {
	Toolbar     lipgloss.Style
	ToolbarItem lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Toolbar:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ToolbarItem: lipgloss.NewStyle().Padding(0, 1),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
