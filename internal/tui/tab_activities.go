package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

func (a App) renderActivitiesTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	starStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	// Assignments with the current filter applied.
	status := statusFilters[a.statusFilter]
	filterLabel := "All"
	if status != "" {
		filterLabel = string(status)
	}
	if a.dueSoonOnly {
		filterLabel += " · due within 7 days"
	}

	filtered := planner.FilterAssignments(a.w.Assignments, status, a.dueSoonOnly, a.today)

	var asgBody strings.Builder
	if len(filtered) == 0 {
		asgBody.WriteString(dimStyle.Render("Nothing here. Press [n] to add an assignment."))
	}
	innerW := components.CardInnerWidth(cw)
	for _, asg := range filtered {
		statusStr := metaStyle.Render(string(asg.Status))
		if asg.Status == model.StatusDone {
			statusStr = doneStyle.Render(string(asg.Status))
		}
		line := fmt.Sprintf("%s %s  %s  %s",
			titleStyle.Render(truncStr(asg.Title, innerW/2)),
			metaStyle.Render("("+asg.Course+")"),
			metaStyle.Render("due "+asg.DueDate.String()),
			statusStr)
		if asg.Overdue(a.today) {
			line += "  " + warnStyle.Render("OVERDUE")
		}
		asgBody.WriteString(line)
		asgBody.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Assignments — "+filterLabel+"  [s]tatus [d]ue-soon",
		strings.TrimRight(asgBody.String(), "\n"), cw))
	b.WriteString("\n")

	// Events ordered by date.
	var evBody strings.Builder
	events := planner.EventsByDate(a.w.Events)
	if len(events) == 0 {
		evBody.WriteString(dimStyle.Render("No events yet."))
	}
	for _, e := range events {
		star := " "
		if e.UserPick {
			star = starStyle.Render("★")
		}
		fmt.Fprintf(&evBody, "%s %s  %s\n",
			star,
			titleStyle.Render(truncStr(e.Title, innerW/2)),
			metaStyle.Render(fmt.Sprintf("%s %s · %s · %s",
				e.Date, e.Time.Clock12(), e.Location, cli.FormatDaysLeft(e.Date.DaysUntil(a.today)))))
	}
	b.WriteString(components.ContentCard("Events", strings.TrimRight(evBody.String(), "\n"), cw))
	b.WriteString("\n")

	// Today's personal tasks (session-only, never persisted).
	var taskBody strings.Builder
	tasks := planner.TasksOn(a.w.Personal[a.cfg.General.DisplayName], a.today)
	if len(tasks) == 0 {
		taskBody.WriteString(dimStyle.Render("No personal tasks for today. Press [p] to add one."))
	}
	for _, task := range tasks {
		fmt.Fprintf(&taskBody, "%s  %s",
			metaStyle.Render(task.Time.Clock12()),
			titleStyle.Render(task.Title))
		if task.Description != "" {
			taskBody.WriteString(metaStyle.Render("  · " + truncStr(task.Description, innerW/3)))
		}
		taskBody.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Today's Personal Tasks (this session only)",
		strings.TrimRight(taskBody.String(), "\n"), cw))

	return b.String()
}
