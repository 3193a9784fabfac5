// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cardbox.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string
	// dataFile allows specifying a custom data file.
	dataFile string

	// rootCmd represents the base command when called without any subcommands.
	// With no subcommand it opens the interactive menu.
	rootCmd = &cobra.Command{
		Use:   "cardbox",
		Short: "A terminal flashcards manager",
		Long: TitleStyle.Render("cardbox") + SubtitleStyle.Render(" - a terminal flashcards manager") + `

cardbox organizes flashcards (front/back text pairs) into named
collections and drills them in a Learn-mode session that tracks
correct, wrong, and skipped answers. Everything is stored in a
single JSON file.

` + SubtitleStyle.Render("Examples:") + `
  cardbox                   Open the interactive menu
  cardbox list              List collections with card counts
  cardbox study Spanish     Drill the Spanish collection in order
  cardbox study Spanish -r  Drill in random order
  cardbox config show       Show the resolved configuration`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.runMainMenu()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "data file (default is the platform data dir)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
