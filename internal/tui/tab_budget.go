package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	l := a.w.Ledger
	symbol := a.cfg.General.Currency
	var b strings.Builder

	balance := planner.Balance(l)
	balanceHint := "on track"
	if balance < 0 {
		balanceHint = "overspent"
	}

	metrics := []components.Metric{
		{Label: "Income", Value: cli.FormatMoney(symbol, planner.TotalIncome(l))},
		{Label: "Budgeted", Value: cli.FormatMoney(symbol, planner.TotalBudgeted(l))},
		{Label: "Expenses", Value: cli.FormatMoney(symbol, planner.TotalExpenses(l))},
		{Label: "Balance", Value: cli.FormatMoney(symbol, balance), Hint: balanceHint},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	var incomeBody strings.Builder
	if len(l.Incomes) == 0 {
		incomeBody.WriteString(dimStyle.Render("No income yet. Press [i] to add one."))
	}
	for _, in := range l.Incomes {
		fmt.Fprintf(&incomeBody, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", innerW-14, truncStr(in.Source, innerW-14))),
			amtStyle.Render(cli.FormatMoney(symbol, in.Amount)))
	}

	var allocBody strings.Builder
	if len(l.Budgets) == 0 {
		allocBody.WriteString(dimStyle.Render("No allocations yet. Press [g] to add one."))
	}
	for _, bc := range l.Budgets {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(bc.Color)).Render("■")
		fmt.Fprintf(&allocBody, "%s %s %s\n",
			swatch,
			nameStyle.Render(fmt.Sprintf("%-*s", innerW-16, truncStr(bc.Category, innerW-16))),
			amtStyle.Render(cli.FormatMoney(symbol, bc.Amount)))
	}

	incomeCard := components.ContentCard("Income", strings.TrimRight(incomeBody.String(), "\n"), halves[0])
	allocCard := components.ContentCard("Allocations", strings.TrimRight(allocBody.String(), "\n"), halves[1])
	b.WriteString(components.CardRow([]string{incomeCard, allocCard}))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Expense Breakdown",
		components.Breakdown(symbol, planner.ExpenseSlices(l.Expenses), components.CardInnerWidth(cw)),
		cw))

	return b.String()
}
