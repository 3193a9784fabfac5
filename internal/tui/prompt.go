// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/huh"

// InputOptions configures the Input prompt.
type InputOptions struct {
	// Title is the prompt displayed above the input.
	Title string
	// Description provides additional context below the title.
	Description string
	// Placeholder is shown while the input is empty.
	Placeholder string
	// Config holds common TUI configuration.
	Config Config
}

// Input prompts for one line of text. The result may be empty; validation
// belongs to the caller (blank input is meaningful for partial edits).
func Input(opts InputOptions) (string, error) {
	var result string
	in := huh.NewInput().
		Title(opts.Title).
		Description(opts.Description).
		Placeholder(opts.Placeholder).
		Value(&result)
	if err := runForm(huh.NewGroup(in), opts.Config); err != nil {
		return "", err
	}
	return result, nil
}

// ConfirmOptions configures the Confirm prompt.
type ConfirmOptions struct {
	// Title is the question to display.
	Title string
	// Description provides additional context below the title.
	Description string
	// Default is the preselected answer.
	Default bool
	// Config holds common TUI configuration.
	Config Config
}

// Confirm asks a yes/no question.
func Confirm(opts ConfirmOptions) (bool, error) {
	result := opts.Default
	c := huh.NewConfirm().
		Title(opts.Title).
		Description(opts.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&result)
	if err := runForm(huh.NewGroup(c), opts.Config); err != nil {
		return false, err
	}
	return result, nil
}

// ChooseOptions configures the Choose prompt.
type ChooseOptions struct {
	// Title is the prompt displayed above the options.
	Title string
	// Options is the list to choose from, shown in order.
	Options []string
	// Height limits the number of visible options (0 for auto).
	Height int
	// Config holds common TUI configuration.
	Config Config
}

// Choose presents a single-select menu and returns the chosen option.
func Choose(opts ChooseOptions) (string, error) {
	var result string

	huhOpts := make([]huh.Option[string], len(opts.Options))
	for i, opt := range opts.Options {
		huhOpts[i] = huh.NewOption(opt, opt)
	}

	sel := huh.NewSelect[string]().
		Title(opts.Title).
		Options(huhOpts...).
		Value(&result)
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	if err := runForm(huh.NewGroup(sel), opts.Config); err != nil {
		return "", err
	}
	return result, nil
}
