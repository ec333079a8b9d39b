// Package tui provides the interactive Bubble Tea dashboard for the
// campus companion.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/config"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

const (
	tabHome = iota
	tabBudget
	tabTimetable
	tabActivities
	tabChat
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// App is the root Bubble Tea model. All planner data lives in the
// workspace; the app only holds UI state on top of it.
type App struct {
	w   *planner.Workspace
	cfg config.Config

	today model.Date

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Active creation form (nil while browsing). vals is shared by
	// pointer so the bound huh fields survive model copies.
	form     *huh.Form
	formKind formKind
	vals     *formValues

	// Activities filter state
	statusFilter int // index into statusFilters
	dueSoonOnly  bool

	// StudyBot state
	chat chatState

	// Transient feedback from the last action
	flash   string
	saveErr error
}

// statusFilters are the assignment filter choices cycled on the
// activities tab. Empty string means all statuses.
var statusFilters = []model.Status{"", model.StatusNotStarted, model.StatusInProgress, model.StatusDone}

// NewApp creates the dashboard model over an already-loaded workspace.
func NewApp(w *planner.Workspace, cfg config.Config) App {
	return App{
		w:     w,
		cfg:   cfg,
		today: model.Today(),
		chat:  newChatState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// StudyBot input intercepts keys while focused
		if a.activeTab == tabChat && a.chat.focused {
			return a.updateChat(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Per-tab actions
		switch a.activeTab {
		case tabHome:
			switch key {
			case "l":
				return a.logStreak()
			case "n", "e":
				return a.openForm(formEvent)
			}
		case tabBudget:
			switch key {
			case "n", "e":
				return a.openForm(formExpense)
			case "i":
				return a.openForm(formIncome)
			case "g":
				return a.openForm(formCategory)
			}
		case tabTimetable:
			if key == "n" {
				return a.openForm(formClass)
			}
		case tabActivities:
			switch key {
			case "n":
				return a.openForm(formAssignment)
			case "p":
				return a.openForm(formTask)
			case "s":
				a.statusFilter = (a.statusFilter + 1) % len(statusFilters)
				return a, nil
			case "d":
				a.dueSoonOnly = !a.dueSoonOnly
				return a, nil
			}
		case tabChat:
			if key == "enter" || key == "i" {
				a.chat.focused = true
				a.chat.input.Focus()
				return a, a.chat.input.Cursor.BlinkCmd()
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.flash = ""
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.flash = ""
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
					a.flash = ""
					if idx == tabChat {
						a.chat.focused = true
						a.chat.input.Focus()
						return a, a.chat.input.Cursor.BlinkCmd()
					}
				}
			}
		}
		return a, nil
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.activeTab == tabChat && a.chat.focused {
		return a.updateChat(msg)
	}
	return a, nil
}

func (a App) logStreak() (tea.Model, tea.Cmd) {
	added, err := a.w.LogStreak(a.today)
	if err != nil {
		a.saveErr = err
		a.flash = "Save failed"
		return a, nil
	}
	a.saveErr = a.w.SaveAll()
	if added {
		a.flash = "Nice! Today added to your streak."
	} else {
		a.flash = "You already logged today."
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  companion needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"h b t a c", "Jump to tab"},
		{"← →", "Previous / Next tab"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"n", "New item for the current tab"},
		{"l", "Log today's streak (Home)"},
		{"i g e", "New income / allocation / expense (Budget)"},
		{"p", "New personal task (Activities)"},
		{"s d", "Cycle status / toggle due-soon (Activities)"},
		{"Esc", "Cancel form / leave input"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	right := fmt.Sprintf("Streak: %d", planner.StreakCount(a.w.Streaks))
	if a.saveErr != nil {
		right = "save failed!"
	}
	statusBar := components.RenderStatusBar(w, a.flash, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.form != nil {
		content = a.form.View()
	} else {
		switch a.activeTab {
		case tabHome:
			content = a.renderHomeTab(cw)
		case tabBudget:
			content = a.renderBudgetTab(cw)
		case tabTimetable:
			content = a.renderTimetableTab(cw)
		case tabActivities:
			content = a.renderActivitiesTab(cw)
		case tabChat:
			content = a.renderChatTab(cw, contentH)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
