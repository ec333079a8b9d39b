package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/the-realgabriel/campus-companion-2/internal/chat"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/components"
	"github.com/the-realgabriel/campus-companion-2/internal/tui/theme"
)

// chatTurn is one question/answer exchange with the StudyBot.
type chatTurn struct {
	question string
	answer   string
}

type chatState struct {
	input   textinput.Model
	log     []chatTurn
	focused bool
}

func newChatState() chatState {
	ti := textinput.New()
	ti.Placeholder = "Ask about assignments, deadlines, or your budget..."
	ti.CharLimit = 256
	ti.Width = 60
	return chatState{input: ti}
}

// updateChat handles key events while the StudyBot input is focused.
func (a App) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			q := strings.TrimSpace(a.chat.input.Value())
			if q != "" {
				a.chat.log = append(a.chat.log, chatTurn{question: q, answer: chat.Reply(q)})
				a.chat.input.SetValue("")
			}
			return a, nil
		case "esc":
			a.chat.focused = false
			a.chat.input.Blur()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

func (a App) renderChatTab(cw, contentH int) string {
	t := theme.Active
	var b strings.Builder

	youStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Show as many recent turns as fit; each turn takes three lines.
	visible := (contentH - 6) / 3
	if visible < 1 {
		visible = 1
	}
	log := a.chat.log
	if len(log) > visible {
		log = log[len(log)-visible:]
	}

	var logBody strings.Builder
	if len(log) == 0 {
		logBody.WriteString(dimStyle.Render("Hi! I can help you plan your study week."))
	}
	innerW := components.CardInnerWidth(cw)
	for _, turn := range log {
		logBody.WriteString(youStyle.Render("You: "))
		logBody.WriteString(textStyle.Render(truncStr(turn.question, innerW-5)))
		logBody.WriteString("\n")
		logBody.WriteString(botStyle.Render("Bot: "))
		logBody.WriteString(textStyle.Render(turn.answer))
		logBody.WriteString("\n\n")
	}

	b.WriteString(components.ContentCard("StudyBot", strings.TrimRight(logBody.String(), "\n"), cw))
	b.WriteString("\n")

	prompt := a.chat.input.View()
	if !a.chat.focused {
		prompt = dimStyle.Render("Press Enter to start typing")
	}
	b.WriteString(components.ContentCard("", prompt, cw))

	return b.String()
}
