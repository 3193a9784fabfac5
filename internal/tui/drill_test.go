// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/deck"
	"cardbox/internal/drill"
)

func newDrillModel(t *testing.T) *DrillModel {
	t.Helper()
	cards := []deck.Card{
		{ID: "aaaaaaaa", Front: "hola", Back: "hello"},
		{ID: "bbbbbbbb", Front: "gato", Back: "cat"},
	}
	session, err := drill.New(cards, drill.ModeSequential, nil)
	if err != nil {
		t.Fatalf("drill.New: %v", err)
	}
	return NewDrillModel(session, DrillOptions{Collection: "Spanish"})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDrillModel_RevealThenJudge(t *testing.T) {
	t.Parallel()

	m := newDrillModel(t)

	view := m.View()
	if !strings.Contains(view, "hola") {
		t.Errorf("presented view missing front:\n%s", view)
	}
	if strings.Contains(view, "hello") {
		t.Errorf("presented view leaks the back:\n%s", view)
	}

	// Judgment keys are ignored before reveal.
	updated, _ := m.Update(keyRune('y'))
	m = updated.(*DrillModel)
	if m.session.Revealed() {
		t.Fatal("judgment key revealed the card")
	}
	if m.session.Tally().CardsSeen != 0 {
		t.Fatal("judgment key before reveal was counted")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*DrillModel)
	if !m.session.Revealed() {
		t.Fatal("enter did not reveal the card")
	}
	view = m.View()
	if !strings.Contains(view, "hello") {
		t.Errorf("revealed view missing back:\n%s", view)
	}

	updated, cmd := m.Update(keyRune('y'))
	m = updated.(*DrillModel)
	if cmd != nil {
		t.Error("judging the first of two cards should not quit")
	}
	tally := m.session.Tally()
	if tally.Correct != 1 || tally.CardsSeen != 1 {
		t.Errorf("tally = %+v, want one correct card seen", tally)
	}
}

func TestDrillModel_InvalidJudgmentKeyShowsHint(t *testing.T) {
	t.Parallel()

	m := newDrillModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*DrillModel)

	updated, cmd := m.Update(keyRune('x'))
	m = updated.(*DrillModel)
	if cmd != nil {
		t.Error("invalid key should not advance or quit")
	}
	if m.session.Tally().CardsSeen != 0 {
		t.Error("invalid key was counted as a judgment")
	}
	if !strings.Contains(m.View(), "press y") {
		t.Errorf("view missing judgment hint:\n%s", m.View())
	}
}

func TestDrillModel_QuitKeyEndsSession(t *testing.T) {
	t.Parallel()

	m := newDrillModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*DrillModel)

	updated, cmd := m.Update(keyRune('q'))
	m = updated.(*DrillModel)
	if cmd == nil {
		t.Fatal("quit judgment should end the program")
	}
	if !m.session.Terminated() {
		t.Error("session not terminated after q")
	}
	if m.session.Tally().CardsSeen != 1 {
		t.Errorf("CardsSeen = %d, want 1", m.session.Tally().CardsSeen)
	}
	if m.View() != "" {
		t.Errorf("terminal view should be empty, got:\n%s", m.View())
	}
}

func TestDrillModel_CtrlCInterrupts(t *testing.T) {
	t.Parallel()

	m := newDrillModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(*DrillModel)
	if cmd == nil {
		t.Fatal("ctrl+c should quit the program")
	}
	if !m.Interrupted() {
		t.Error("Interrupted() = false after ctrl+c")
	}
}

func TestDrillModel_CompletingLastCardQuits(t *testing.T) {
	t.Parallel()

	m := newDrillModel(t)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEnter}, keyRune('y'),
		{Type: tea.KeyEnter}, keyRune('n'),
	} {
		updated, _ := m.Update(key)
		m = updated.(*DrillModel)
	}

	if !m.session.Done() {
		t.Fatal("session not done after judging both cards")
	}
	tally := m.session.Tally()
	if tally.Correct != 1 || tally.Wrong != 1 || tally.CardsSeen != 2 {
		t.Errorf("tally = %+v, want 1 correct, 1 wrong, 2 seen", tally)
	}
}

func TestMarkdown_FallsBackToRawText(t *testing.T) {
	t.Parallel()

	// Plain text must survive rendering in some recognizable form.
	out := Markdown("hola", 40)
	if !strings.Contains(out, "hola") {
		t.Errorf("Markdown(hola) = %q, want it to contain the text", out)
	}
}
