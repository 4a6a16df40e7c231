// Item add command appends a row to a collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemAddSets []string

var itemAddCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add an item to a collection",
	Long: `Add appends one item built from --set field=value pairs. Values
are coerced by each field's declared type: numbers, 2006-01-02 dates,
true/false booleans, and select values that must match a declared option.

Example:
  listicle item add "Guitar Practice" \
      --set song_name=Wonderwall --set artist=Oasis --set difficulty=beginner`,
	Args: cobra.ExactArgs(1),
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringArrayVar(&itemAddSets, "set", nil, "field=value pair (repeatable)")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	c, err := st.Load(args[0])
	if err != nil {
		return err
	}

	data, err := parseSetArgs(c, itemAddSets)
	if err != nil {
		return err
	}
	it, err := c.AddItem(data)
	if err != nil {
		return err
	}
	if err := st.Save(c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if flagJSON {
		return printJSON(it)
	}
	fmt.Printf("Added item %s to %q\n", it.ID, c.Name)
	return nil
}
