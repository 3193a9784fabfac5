// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"cardbox/internal/issue"
	"cardbox/internal/tui"
)

// Top-level menu actions.
const (
	menuCreate = "Create collection"
	menuOpen   = "Open collection"
	menuList   = "List collections"
	menuDelete = "Delete collection"
	menuExit   = "Exit"
)

// Per-collection menu actions.
const (
	colLearn  = "Learn"
	colAdd    = "Add card"
	colManage = "Manage cards"
	colBack   = "Back"
)

// Manage-cards menu actions.
const (
	cardsList   = "List cards"
	cardsAdd    = "Add card"
	cardsEdit   = "Edit card"
	cardsDelete = "Delete card"
	cardsSearch = "Search"
	cardsBack   = "Back"
)

// runMainMenu drives the interactive top-level loop until the user exits.
// Cancelling a prompt (Esc/Ctrl+C) backs out one level instead of killing
// the program.
func (a *App) runMainMenu() error {
	for {
		tui.ClearScreen()
		choice, err := tui.Choose(tui.ChooseOptions{
			Title:   fmt.Sprintf("cardbox  ·  %d collections", a.Library.CollectionCount()),
			Options: []string{menuCreate, menuOpen, menuList, menuDelete, menuExit},
			Config:  a.tuiCfg,
		})
		if errors.Is(err, tui.ErrCancelled) || choice == menuExit {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case menuCreate:
			a.createCollection()
		case menuOpen:
			a.openCollection()
		case menuList:
			a.listCollections()
		case menuDelete:
			a.deleteCollection()
		}
	}
}

func (a *App) createCollection() {
	name, err := tui.Input(tui.InputOptions{
		Title:  "New collection name",
		Config: a.tuiCfg,
	})
	if errors.Is(err, tui.ErrCancelled) {
		return
	}
	if err == nil {
		err = a.Library.CreateCollection(name)
	}
	if err != nil {
		a.reportError(err)
		a.pause()
		return
	}
	fmt.Fprintln(a.stdout, SuccessStyle.Render(fmt.Sprintf("Created collection %q.", name)))
	a.pause()
}

func (a *App) listCollections() {
	tui.ClearScreen()
	names := a.Library.CollectionNames()
	if len(names) == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("(No collections yet.)"))
		a.pause()
		return
	}
	for _, name := range names {
		col, err := a.Library.Collection(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(a.stdout, "- %s %s\n", name, SubtitleStyle.Render(fmt.Sprintf("(%d cards)", col.Len())))
	}
	a.pause()
}

func (a *App) deleteCollection() {
	name, ok := a.selectCollection("Delete which collection?")
	if !ok {
		return
	}
	confirmed, err := tui.Confirm(tui.ConfirmOptions{
		Title:       fmt.Sprintf("Delete collection %q and ALL its cards?", name),
		Description: "This cannot be undone.",
		Config:      a.tuiCfg,
	})
	if err != nil || !confirmed {
		return
	}
	if err := a.Library.DeleteCollection(name); err != nil {
		a.reportError(err)
		a.pause()
		return
	}
	fmt.Fprintln(a.stdout, SuccessStyle.Render("Deleted."))
	a.pause()
}

func (a *App) openCollection() {
	name, ok := a.selectCollection("Open which collection?")
	if !ok {
		return
	}
	a.runCollectionMenu(name)
}

func (a *App) runCollectionMenu(name string) {
	for {
		tui.ClearScreen()
		col, err := a.Library.Collection(name)
		if err != nil {
			a.reportError(err)
			return
		}
		choice, err := tui.Choose(tui.ChooseOptions{
			Title:   fmt.Sprintf("Collection: %s  ·  %d cards", name, col.Len()),
			Options: []string{colLearn, colAdd, colManage, colBack},
			Config:  a.tuiCfg,
		})
		if errors.Is(err, tui.ErrCancelled) || choice == colBack {
			return
		}
		if err != nil {
			a.reportError(err)
			return
		}

		switch choice {
		case colLearn:
			a.learnInteractive(name)
		case colAdd:
			a.addCard(name)
		case colManage:
			a.runManageMenu(name)
		}
	}
}

func (a *App) runManageMenu(name string) {
	for {
		tui.ClearScreen()
		col, err := a.Library.Collection(name)
		if err != nil {
			a.reportError(err)
			return
		}
		choice, err := tui.Choose(tui.ChooseOptions{
			Title:   fmt.Sprintf("Manage cards: %s  ·  %d cards", name, col.Len()),
			Options: []string{cardsList, cardsAdd, cardsEdit, cardsDelete, cardsSearch, cardsBack},
			Config:  a.tuiCfg,
		})
		if errors.Is(err, tui.ErrCancelled) || choice == cardsBack {
			return
		}
		if err != nil {
			a.reportError(err)
			return
		}

		switch choice {
		case cardsList:
			tui.ClearScreen()
			a.printCards(name, "")
			a.pause()
		case cardsAdd:
			a.addCard(name)
		case cardsEdit:
			a.editCard(name)
		case cardsDelete:
			a.deleteCard(name)
		case cardsSearch:
			a.searchCards(name)
		}
	}
}

func (a *App) addCard(name string) {
	front, err := tui.Input(tui.InputOptions{Title: "Front", Config: a.tuiCfg})
	if err != nil {
		return
	}
	back, err := tui.Input(tui.InputOptions{Title: "Back", Config: a.tuiCfg})
	if err != nil {
		return
	}
	card, err := a.Library.AddCard(name, front, back)
	if err != nil {
		a.reportError(err)
		a.pause()
		return
	}
	fmt.Fprintln(a.stdout, SuccessStyle.Render(fmt.Sprintf("Added card %s.", card.ID)))
	a.pause()
}

func (a *App) editCard(name string) {
	card, ok := a.selectCard(name, "Edit which card?")
	if !ok {
		return
	}
	front, err := tui.Input(tui.InputOptions{
		Title:       fmt.Sprintf("Front [%s]", card.Front),
		Description: "Leave blank to keep the current value.",
		Config:      a.tuiCfg,
	})
	if err != nil {
		return
	}
	back, err := tui.Input(tui.InputOptions{
		Title:       fmt.Sprintf("Back [%s]", card.Back),
		Description: "Leave blank to keep the current value.",
		Config:      a.tuiCfg,
	})
	if err != nil {
		return
	}
	if err := a.Library.EditCard(name, card.ID, front, back); err != nil {
		a.reportError(err)
		a.pause()
		return
	}
	fmt.Fprintln(a.stdout, SuccessStyle.Render("Updated."))
	a.pause()
}

func (a *App) deleteCard(name string) {
	card, ok := a.selectCard(name, "Delete which card?")
	if !ok {
		return
	}
	confirmed, err := tui.Confirm(tui.ConfirmOptions{
		Title:  fmt.Sprintf("Delete card %s?", card.ID),
		Config: a.tuiCfg,
	})
	if err != nil || !confirmed {
		return
	}
	if err := a.Library.DeleteCard(name, card.ID); err != nil {
		a.reportError(err)
		a.pause()
		return
	}
	fmt.Fprintln(a.stdout, SuccessStyle.Render("Deleted."))
	a.pause()
}

func (a *App) searchCards(name string) {
	query, err := tui.Input(tui.InputOptions{
		Title:       "Search text",
		Description: "Case-insensitive match against front and back.",
		Config:      a.tuiCfg,
	})
	if err != nil {
		return
	}
	tui.ClearScreen()
	a.printCards(name, query)
	a.pause()
}

// printCards lists a collection's cards in stored order, filtered by query
// when non-empty.
func (a *App) printCards(name, query string) {
	cards, err := a.Library.SearchCards(name, query)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(cards) == 0 {
		if query == "" {
			fmt.Fprintln(a.stdout, SubtitleStyle.Render("(No cards yet.)"))
		} else {
			fmt.Fprintln(a.stdout, SubtitleStyle.Render("No matches."))
		}
		return
	}
	if query != "" {
		fmt.Fprintln(a.stdout, TitleStyle.Render(fmt.Sprintf("Matches (%d):", len(cards))))
	} else {
		fmt.Fprintln(a.stdout, TitleStyle.Render(fmt.Sprintf("Cards (%d):", len(cards))))
	}
	for _, c := range cards {
		fmt.Fprintf(a.stdout, "- %s: %s  ->  %s\n", IDStyle.Render(c.ID), c.Front, c.Back)
	}
}

// selectCollection prompts for one of the existing collections.
func (a *App) selectCollection(title string) (string, bool) {
	names := a.Library.CollectionNames()
	if len(names) == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("(No collections yet.)"))
		a.pause()
		return "", false
	}
	choice, err := tui.Choose(tui.ChooseOptions{
		Title:   title,
		Options: names,
		Height:  10,
		Config:  a.tuiCfg,
	})
	if err != nil {
		return "", false
	}
	return choice, true
}

// selectCard prompts for one of the collection's cards, shown in stored
// order as "id: front -> back".
func (a *App) selectCard(name, title string) (pickedCard, bool) {
	col, err := a.Library.Collection(name)
	if err != nil {
		a.reportError(err)
		return pickedCard{}, false
	}
	if col.Len() == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("(No cards yet.)"))
		a.pause()
		return pickedCard{}, false
	}

	options := make([]string, col.Len())
	byOption := make(map[string]pickedCard, col.Len())
	for i, c := range col.Cards {
		opt := fmt.Sprintf("%s: %s  ->  %s", c.ID, c.Front, c.Back)
		options[i] = opt
		byOption[opt] = pickedCard{ID: c.ID, Front: c.Front, Back: c.Back}
	}

	choice, err := tui.Choose(tui.ChooseOptions{
		Title:   title,
		Options: options,
		Height:  10,
		Config:  a.tuiCfg,
	})
	if err != nil {
		return pickedCard{}, false
	}
	return byOption[choice], true
}

// pickedCard carries just what the menus need from a card selection.
type pickedCard struct {
	ID    string
	Front string
	Back  string
}

// reportError prints an error to stderr; actionable errors get their
// suggestions, other errors a plain styled line.
func (a *App) reportError(err error) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(a.stderr, ErrorStyle.Render(ae.Format(a.Config.UI.Verbose)))
		return
	}
	fmt.Fprintln(a.stderr, ErrorStyle.Render(err.Error()))
}

// pause waits for enter so output stays on screen before the next clear.
func (a *App) pause() {
	fmt.Fprint(a.stdout, SubtitleStyle.Render("Press enter to continue..."))
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
