// Create command starts a new empty collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/pkg/types"
)

var createType string

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new collection",
	Long: `Create starts a new empty collection and saves it immediately.

The type is a free-form label ("music", "books", ...) used for display
only. Add fields with "listicle field add" before adding items.

Example:
  listicle create "Guitar Practice" --type music
  listicle create Reading --type books`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createType, "type", "", "category label for the collection")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if st.Exists(name) {
		return fmt.Errorf("collection %q already exists", name)
	}

	c, err := types.New(name, createType)
	if err != nil {
		return err
	}
	if err := st.Save(c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("Created collection %q (%s)\n", c.Name, st.Resolve(c.Name))
	return nil
}
