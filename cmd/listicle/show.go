// Show command prints one collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/internal/markdown"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a collection",
	Long: `Show prints the collection in its on-disk Markdown form: the
metadata block, a heading, and the item table. With --json the collection
is printed as a JSON document instead.

Example:
  listicle show "Guitar Practice"
  listicle show Reading --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := st.Load(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(c)
	}
	raw, err := markdown.Render(c)
	if err != nil {
		return err
	}
	fmt.Print(string(raw))
	return nil
}
