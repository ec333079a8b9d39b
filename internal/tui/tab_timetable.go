package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

func (a App) renderTimetableTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	groups := planner.GroupTimetable(a.w.Timetable)
	if len(groups) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(components.ContentCard("Weekly Timetable",
			dim.Render("No classes yet. Press [n] to add one."), cw))
		return b.String()
	}

	timeStyle := lipgloss.NewStyle().Foreground(t.Accent)
	courseStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	bellStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	innerW := components.CardInnerWidth(cw)
	for _, g := range groups {
		var body strings.Builder
		for _, e := range g.Entries {
			line := fmt.Sprintf("%s  %s",
				timeStyle.Render(e.Time.Clock12()),
				courseStyle.Render(e.Course))
			if e.Lecturer != "" {
				line += metaStyle.Render("  · " + e.Lecturer)
			}
			if e.Reminder {
				line += "  " + bellStyle.Render("[reminder]")
			}
			body.WriteString(line)
			body.WriteString("\n")
			if e.Notes != "" {
				body.WriteString(metaStyle.Render("          " + truncStr(e.Notes, innerW-10)))
				body.WriteString("\n")
			}
		}
		b.WriteString(components.ContentCard(string(g.Day), strings.TrimRight(body.String(), "\n"), cw))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
