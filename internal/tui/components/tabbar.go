package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

// Tab is a single entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the dashboard pages in display order.
var Tabs = []Tab{
	{Name: "Home", Key: 'h'},
	{Name: "Budget", Key: 'b'},
	{Name: "Timetable", Key: 't'},
	{Name: "Activities", Key: 'a'},
	{Name: "StudyBot", Key: 'c'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Highlight the shortcut letter where it appears in the name.
		pos := strings.IndexRune(strings.ToLower(tab.Name), tab.Key)
		if pos >= 0 {
			parts = append(parts,
				inactiveStyle.Render(tab.Name[:pos])+
					dimStyle.Render("[")+keyStyle.Render(string(tab.Name[pos]))+dimStyle.Render("]")+
					inactiveStyle.Render(tab.Name[pos+1:]))
		} else {
			parts = append(parts,
				inactiveStyle.Render(tab.Name)+
					dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]"))
		}
	}

	bar := " " + strings.Join(parts, "  ")
	if w := lipgloss.Width(bar); w < width {
		bar += strings.Repeat(" ", width-w)
	}
	return bar
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
