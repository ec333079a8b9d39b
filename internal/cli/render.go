package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

// CLI palette, matched to the planner's soft campus look.
var (
	ColorBorder    = lipgloss.Color("#dbeefc")
	ColorTextDim   = lipgloss.Color("#8aa3bc")
	ColorTextMuted = lipgloss.Color("#3b556e")
	ColorText      = lipgloss.Color("#16314a")
	ColorAccent    = lipgloss.Color("#5c84d6")
	ColorGreen     = lipgloss.Color("#4c9a63")
	ColorRed       = lipgloss.Color("#c94f4f")
	ColorGold      = lipgloss.Color("#d0a215")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Warn renders text in the warning color (overdue highlights).
func Warn(s string) string {
	return warnStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Gold renders the pick-star highlight.
func Gold(s string) string {
	return lipgloss.NewStyle().Foreground(ColorGold).Render(s)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// The first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeRule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeRule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeRule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeRule("╰", "┴", "╯")

	return b.String()
}

// RenderBreakdown renders expense slices as proportional horizontal
// bars with share percentages: the terminal stand-in for the pie chart.
// Each slice is one bar; repeated labels stay separate.
func RenderBreakdown(symbol string, slices []planner.Slice, width int) string {
	if len(slices) == 0 {
		return ""
	}

	var total float64
	labelW := 0
	for _, s := range slices {
		total += s.Amount
		if len(s.Label) > labelW {
			labelW = len(s.Label)
		}
	}
	if total <= 0 {
		total = 1
	}
	if labelW > 20 {
		labelW = 20
	}

	barW := width - labelW - 22
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, s := range slices {
		share := s.Amount / total
		filled := int(share * float64(barW))
		if filled < 1 && s.Amount > 0 {
			filled = 1
		}

		label := s.Label
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}

		barStyle := headerStyle
		if s.Color != "" {
			barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		}

		fmt.Fprintf(&b, "  %-*s %s %s %s\n",
			labelW, label,
			barStyle.Render(strings.Repeat("█", filled)),
			mutedStyle.Render(FormatMoney(symbol, s.Amount)),
			dimStyle.Render(FormatPercent(share)),
		)
	}
	return b.String()
}
