package widget

import "github.com/charmbracelet/lipgloss"

// Style controls widget rendering.
type Style struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	// Mirror is applied to Shadow content before measuring. Keep its
	// padding and borders equal to the visible widget's.
	Mirror lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Mirror:      lipgloss.NewStyle(),
	}
}

func placeholderStyle(base lipgloss.Style, color string) lipgloss.Style {
	if color == "" {
		return base
	}
	return base.Foreground(lipgloss.Color(color))
}
