// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// listCmd prints collections with card counts, one per line, for scripts
// and quick checks without entering the menu.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections with card counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.runList(cmd.OutOrStdout())
	},
}

func (a *App) runList(out io.Writer) error {
	names := a.Library.CollectionNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "(No collections yet.)")
		return nil
	}
	for _, name := range names {
		col, err := a.Library.Collection(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%d\n", name, col.Len())
	}
	return nil
}
