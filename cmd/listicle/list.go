// List command prints a summary of every collection in the data directory.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	Long: `List scans the data directory and prints one line per collection:
name, type, item count, and last update. Only each file's metadata block
is read, so listing stays fast for large collections.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	summaries, err := st.List()
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if flagJSON {
		return printJSON(summaries)
	}
	if len(summaries) == 0 {
		fmt.Println("No collections found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tITEMS\tUPDATED")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Name, s.Type, s.ItemCount, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
