// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardbox/internal/drill"
)

// DrillOptions configures the Learn-mode screen.
type DrillOptions struct {
	// Collection is the collection name shown in the header.
	Collection string
	// Config holds common TUI configuration.
	Config Config
}

// DrillModel is the bubbletea model for a Learn-mode session. It owns no
// session logic: every keypress is translated into one state-machine event
// (Reveal or Judge) and the session decides what it means.
type DrillModel struct {
	session     *drill.Session
	collection  string
	width       int
	hint        string
	interrupted bool
}

var (
	drillHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))

	drillLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	drillRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	drillHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	drillHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))
)

// NewDrillModel creates the Learn-mode screen over a running session.
func NewDrillModel(session *drill.Session, opts DrillOptions) *DrillModel {
	return &DrillModel{
		session:    session,
		collection: opts.Collection,
		width:      80,
	}
}

// Interrupted reports whether the screen was closed with Ctrl+C rather than
// through a judgment.
func (m *DrillModel) Interrupted() bool { return m.interrupted }

// Init implements tea.Model.
func (m *DrillModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DrillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		if !m.session.Revealed() {
			return m.updatePresented(msg)
		}
		return m.updateRevealed(msg)
	}
	return m, nil
}

// updatePresented handles keys while the front is showing. Only the reveal
// action is accepted here.
func (m *DrillModel) updatePresented(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if err := m.session.Reveal(); err != nil {
			return m, tea.Quit
		}
		m.hint = ""
	default:
		m.hint = "press enter to reveal the back"
	}
	return m, nil
}

// updateRevealed handles keys at the judgment prompt. Unrecognized keys are
// rejected with a hint and count nothing.
func (m *DrillModel) updateRevealed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	j, err := drill.ParseJudgment(msg.String())
	if err != nil {
		m.hint = "press y (got it), n (missed it), s (skip), or q (quit)"
		return m, nil
	}
	if err := m.session.Judge(j); err != nil {
		return m, tea.Quit
	}
	m.hint = ""
	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *DrillModel) View() string {
	if m.session.Done() || m.interrupted {
		return ""
	}

	card, pos, err := m.session.Current()
	if err != nil {
		return ""
	}

	width := min(m.width, 72)
	rule := drillRuleStyle.Render(strings.Repeat("─", width))

	var b strings.Builder
	header := fmt.Sprintf("[%s] Card %d/%d  (id: %s)",
		m.collection, pos, m.session.Tally().TotalCards, card.ID)
	b.WriteString(drillHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(drillLabelStyle.Render("FRONT"))
	b.WriteString("\n")
	b.WriteString(Markdown(card.Front, width))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	if m.session.Revealed() {
		b.WriteString(drillLabelStyle.Render("BACK"))
		b.WriteString("\n")
		b.WriteString(Markdown(card.Back, width))
		b.WriteString("\n")
		b.WriteString(rule)
		b.WriteString("\n")
		b.WriteString(drillHelpStyle.Render("Got it?  y yes · n no · s skip · q quit"))
	} else {
		b.WriteString(drillHelpStyle.Render("Press enter to reveal the back"))
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(drillHintStyle.Render(m.hint))
	}
	b.WriteString("\n")
	return b.String()
}
