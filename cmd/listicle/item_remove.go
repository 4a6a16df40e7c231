// Item remove command deletes a row from a collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <item-id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRemove,
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	c, err := st.Load(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	if err := c.RemoveItem(id); err != nil {
		return err
	}
	if err := st.Save(c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	fmt.Printf("Removed item %s from %q\n", id, c.Name)
	return nil
}
