// Delete command removes a collection's backing file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a collection",
	Long: `Delete removes the collection's file from the data directory.
There is no trash; the file is gone once the command succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := st.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted collection %q\n", name)
	return nil
}
