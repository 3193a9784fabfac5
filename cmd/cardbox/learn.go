// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"cardbox/internal/drill"
	"cardbox/internal/tui"
)

// learnInteractive is the menu entry point: asks for the ordering mode,
// then runs a session.
func (a *App) learnInteractive(name string) {
	choice, err := tui.Choose(tui.ChooseOptions{
		Title:   "Learn mode",
		Options: []string{"In order", "Random"},
		Config:  a.tuiCfg,
	})
	if err != nil {
		return
	}
	mode := drill.ModeSequential
	if choice == "Random" {
		mode = drill.ModeRandom
	}
	if err := a.runLearn(name, mode); err != nil {
		a.reportError(err)
	}
	a.pause()
}

// runLearn snapshots the collection, runs a drill session to a terminal
// state, and prints the final tally. On a real terminal the session runs as
// a full-screen bubbletea program; otherwise it falls back to a plain
// line-based loop so scripts and screen readers work.
func (a *App) runLearn(name string, mode drill.Mode) error {
	cards, err := a.Library.Snapshot(name)
	if err != nil {
		return err
	}

	session, err := drill.New(cards, mode, nil)
	if errors.Is(err, drill.ErrNothingToLearn) {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("No cards to learn yet."))
		return nil
	}
	if err != nil {
		return err
	}

	a.Logger.Debug("drill session started", "collection", name, "mode", mode, "cards", session.Tally().TotalCards)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		model := tui.NewDrillModel(session, tui.DrillOptions{
			Collection: name,
			Config:     a.tuiCfg,
		})
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return err
		}
	} else {
		if err := runDrillLineMode(session, name, os.Stdin, a.stdout); err != nil {
			return err
		}
	}

	a.printTally(session)
	return nil
}

// runDrillLineMode drives a session over plain line I/O: enter reveals,
// then y/n/skip/q judges, with a re-prompt on anything unrecognized.
func runDrillLineMode(session *drill.Session, collection string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	total := session.Tally().TotalCards

	for !session.Done() {
		card, pos, err := session.Current()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "[%s] Card %d/%d  (id: %s)\n", collection, pos, total, card.ID)
		fmt.Fprintf(out, "FRONT: %s\n", card.Front)
		fmt.Fprint(out, "Press enter to reveal the back...")
		if _, err := reader.ReadString('\n'); err != nil {
			return err
		}
		if err := session.Reveal(); err != nil {
			return err
		}
		fmt.Fprintf(out, "BACK: %s\n", card.Back)

		for {
			fmt.Fprint(out, "Got it? (y/n/skip/q): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			j, err := drill.ParseJudgment(strings.TrimSpace(line))
			if err != nil {
				fmt.Fprintln(out, "Please enter y, n, skip, or q.")
				continue
			}
			if err := session.Judge(j); err != nil {
				return err
			}
			break
		}
		fmt.Fprintln(out)
	}
	return nil
}

// printTally renders the final session counts.
func (a *App) printTally(session *drill.Session) {
	tally := session.Tally()
	if session.Terminated() {
		fmt.Fprintln(a.stdout, WarningStyle.Render("Session ended early."))
	} else {
		fmt.Fprintln(a.stdout, TitleStyle.Render("Done!"))
	}
	fmt.Fprintf(a.stdout, "%s %d\n", SuccessStyle.Render("Correct:"), tally.Correct)
	fmt.Fprintf(a.stdout, "%s    %d\n", ErrorStyle.Render("Wrong:"), tally.Wrong)
	fmt.Fprintf(a.stdout, "%s  %d\n", WarningStyle.Render("Skipped:"), tally.Skipped)
	fmt.Fprintln(a.stdout, SubtitleStyle.Render(fmt.Sprintf("Seen %d of %d cards.", tally.CardsSeen, tally.TotalCards)))
}
