package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// Breakdown renders spending slices as proportional horizontal bars,
// one row per slice, each bar tinted with the slice's own color.
func Breakdown(symbol string, slices []planner.Slice, width int) string {
	t := theme.Active

	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet.")
	}

	total := 0.0
	labelW := 0
	for _, s := range slices {
		total += s.Amount
		if len(s.Label) > labelW {
			labelW = len(s.Label)
		}
	}
	if labelW > 16 {
		labelW = 16
	}
	if total <= 0 {
		total = 1
	}

	// label + space + bar + space + amount/percent tail
	barMax := width - labelW - 20
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	tailStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, s := range slices {
		frac := s.Amount / total
		barLen := int(frac * float64(barMax))
		if barLen < 1 && s.Amount > 0 {
			barLen = 1
		}

		barColor := t.Accent
		if s.Color != "" {
			barColor = lipgloss.Color(s.Color)
		}
		bar := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", barLen))

		label := s.Label
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}

		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)),
			bar,
			tailStyle.Render(fmt.Sprintf("%s (%.0f%%)", cli.FormatMoney(symbol, s.Amount), frac*100)))
	}

	return strings.TrimRight(b.String(), "\n")
}
