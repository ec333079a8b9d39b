package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. flash is a transient
// message from the last action; right is pinned to the right edge.
func RenderStatusBar(width int, flash, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	flashStyle := lipgloss.NewStyle().Foreground(t.Green)

	left := " [?]help  [n]ew  [q]uit"
	if flash != "" {
		left += "  " + flashStyle.Render(flash)
	}
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
