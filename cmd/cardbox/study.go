// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"cardbox/internal/drill"
)

var studyRandom bool

// studyCmd starts a drill session directly, skipping the menu.
var studyCmd = &cobra.Command{
	Use:   "study <collection>",
	Short: "Drill a collection in Learn mode",
	Long: `Drill a collection in Learn mode.

Each card shows its front first; press enter to reveal the back, then
judge yourself: y (got it), n (missed it), s (skip), or q to end the
session early. The final tally counts correct, wrong, and skipped cards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		mode := drill.ModeSequential
		if studyRandom {
			mode = drill.ModeRandom
		}
		return app.runLearn(args[0], mode)
	},
}

func init() {
	studyCmd.Flags().BoolVarP(&studyRandom, "random", "r", false, "shuffle the cards once at session start")
}
