package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	w := a.w
	symbol := a.cfg.General.Currency
	var b strings.Builder

	greetStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	b.WriteString(greetStyle.Render(fmt.Sprintf(" Welcome back, %s!", a.cfg.General.DisplayName)))
	b.WriteString("\n")

	streak := planner.StreakCount(w.Streaks)
	metrics := []components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(symbol, planner.Balance(w.Ledger)), Hint: "income − expenses"},
		{Label: "Assignments Pending", Value: strconv.Itoa(planner.PendingAssignments(w.Assignments))},
		{Label: "Upcoming Events", Value: strconv.Itoa(planner.UpcomingEvents(w.Events, a.today))},
		{Label: "Streak", Value: fmt.Sprintf("%d day(s)", streak), Hint: "[l] to log today"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Last two weeks of streak activity, oldest on the left.
	logged := make(map[string]bool, len(w.Streaks))
	for _, d := range w.Streaks {
		logged[d.String()] = true
	}
	vals := make([]float64, 14)
	for i := 0; i < 14; i++ {
		if logged[a.today.AddDays(i-13).String()] {
			vals[i] = 1
		}
	}
	b.WriteString(components.ContentCard("Last 14 Days", components.Sparkline(vals, t.Green), cw))
	b.WriteString("\n")

	// Picks + expense breakdown side by side.
	halves := components.LayoutRow(cw, 2)

	pickStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	starStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var picksBody strings.Builder
	picks := planner.Picks(w.Events, 4)
	if len(picks) == 0 {
		picksBody.WriteString(dimStyle.Render("Star an event to pin it here."))
	}
	innerW := components.CardInnerWidth(halves[0])
	for _, e := range picks {
		fmt.Fprintf(&picksBody, "%s %s\n   %s\n",
			starStyle.Render("★"),
			pickStyle.Render(truncStr(e.Title, innerW-2)),
			dimStyle.Render(fmt.Sprintf("%s · %s", e.Date, cli.FormatDaysLeft(e.Date.DaysUntil(a.today)))))
	}

	picksCard := components.ContentCard("Your Picks", strings.TrimRight(picksBody.String(), "\n"), halves[0])
	spendCard := components.ContentCard("Spending",
		components.Breakdown(symbol, planner.ExpenseSlices(w.Ledger.Expenses), components.CardInnerWidth(halves[1])),
		halves[1])

	b.WriteString(components.CardRow([]string{picksCard, spendCard}))

	return b.String()
}
