// Field add command appends a column definition to a collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/listicle/pkg/types"
)

var (
	fieldAddName     string
	fieldAddType     string
	fieldAddRequired bool
	fieldAddOptions  []string
)

var fieldAddCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add a field to a collection",
	Long: `Add appends a field (column) definition to a collection.

Valid types: text, number, date, boolean, select. Select fields must
declare at least one --option. A required field can only be added while
the collection has no items.

Example:
  listicle field add "Guitar Practice" --name song_name --type text --required
  listicle field add "Guitar Practice" --name difficulty --type select \
      --option beginner --option intermediate --option advanced`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldAdd,
}

func init() {
	fieldAddCmd.Flags().StringVar(&fieldAddName, "name", "", "field name (required)")
	fieldAddCmd.Flags().StringVar(&fieldAddType, "type", types.FieldTypeText, "field type: text, number, date, boolean, select")
	fieldAddCmd.Flags().BoolVar(&fieldAddRequired, "required", false, "items must supply a value for this field")
	fieldAddCmd.Flags().StringArrayVar(&fieldAddOptions, "option", nil, "allowed value for a select field (repeatable)")
	_ = fieldAddCmd.MarkFlagRequired("name")
}

func runFieldAdd(cmd *cobra.Command, args []string) error {
	c, err := st.Load(args[0])
	if err != nil {
		return err
	}

	f := types.Field{
		Name:     fieldAddName,
		Type:     fieldAddType,
		Required: fieldAddRequired,
		Options:  fieldAddOptions,
	}
	if err := c.AddField(f); err != nil {
		return err
	}
	if err := st.Save(c); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	if flagJSON {
		return printJSON(f)
	}
	fmt.Printf("Added field %q (%s) to %q\n", f.Name, f.Type, c.Name)
	return nil
}
