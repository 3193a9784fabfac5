// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal user interface components for cardbox.
// It wraps charmbracelet/huh for prompts and menus and adds a bubbletea
// model for the Learn-mode drill screen, so the cmd layer never talks to a
// terminal library directly.
package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a prompt (Esc/Ctrl+C).
var ErrCancelled = errors.New("cancelled by user")

// Theme represents the visual theme for TUI components.
type Theme string

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables screen-reader friendly prompts.
	Accessible bool
}

// DefaultConfig returns the default configuration. Accessible mode is
// enabled automatically when stdin is not a terminal (pipes, command
// substitution) or when the ACCESSIBLE environment variable is set.
func DefaultConfig() Config {
	return Config{
		Theme:      ThemeDefault,
		Accessible: !isInputTerminal() || os.Getenv("ACCESSIBLE") != "",
	}
}

// isInputTerminal returns true if stdin is connected to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// shouldUseAccessible returns true if accessible mode should be used, even
// when the config didn't ask for it but stdin is not a terminal.
func shouldUseAccessible(cfg Config) bool {
	return cfg.Accessible || !isInputTerminal()
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}

// runForm runs a single-group form, translating huh's abort error into
// ErrCancelled.
func runForm(group *huh.Group, cfg Config) error {
	form := huh.NewForm(group).
		WithTheme(getHuhTheme(cfg.Theme)).
		WithAccessible(shouldUseAccessible(cfg))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// ClearScreen erases the terminal between menu screens. A no-op when stdout
// is not a terminal, so piped output stays readable.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	os.Stdout.WriteString("\033[2J\033[H")
}
