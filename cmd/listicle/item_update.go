// Item update command changes the data of an existing row.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/pkg/types"
)

var itemUpdateSets []string

var itemUpdateCmd = &cobra.Command{
	Use:   "update <collection> <item-id>",
	Short: "Update an item",
	Long: `Update merges --set field=value pairs into the item's current
data. A pair with an empty value ("field=") clears that field. The merged
result is validated in full before anything is saved.

Example:
  listicle item update "Guitar Practice" 0190a3a1-... --set difficulty=intermediate
  listicle item update "Guitar Practice" 0190a3a1-... --set artist=`,
	Args: cobra.ExactArgs(2),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringArrayVar(&itemUpdateSets, "set", nil, "field=value pair (repeatable)")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	c, err := st.Load(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("item %q: %w", id, types.ErrItemNotFound)
	}

	data := make(map[string]types.Value, len(it.Data))
	for k, v := range it.Data {
		data[k] = v
	}
	if err := mergeSetArgs(c, data, itemUpdateSets); err != nil {
		return err
	}
	if err := c.UpdateItem(id, data); err != nil {
		return err
	}
	if err := st.Save(c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if flagJSON {
		return printJSON(it)
	}
	fmt.Printf("Updated item %s in %q\n", id, c.Name)
	return nil
}
