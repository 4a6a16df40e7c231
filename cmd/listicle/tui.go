// TUI command launches the interactive terminal browser.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse collections interactively",
	Long: `Tui opens a full-screen terminal browser: pick a collection from
the list, view its items as a table, and add items with a form. All
changes go through the same atomic file writes as the other commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(st)
	},
}
