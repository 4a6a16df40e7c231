// Shared helpers for subcommands: --set parsing and JSON output.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dukaforge/listicle/pkg/types"
)

// parseSetArgs builds an item data map from field=value arguments,
// coercing each value by its field's declared type.
func parseSetArgs(c *types.Collection, sets []string) (map[string]types.Value, error) {
	data := make(map[string]types.Value, len(sets))
	if err := mergeSetArgs(c, data, sets); err != nil {
		return nil, err
	}
	return data, nil
}

// mergeSetArgs applies field=value arguments to an existing data map.
// An empty value clears the field.
func mergeSetArgs(c *types.Collection, data map[string]types.Value, sets []string) error {
	for _, arg := range sets {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid --set %q (expected field=value)", arg)
		}
		name, raw := parts[0], parts[1]

		f, ok := c.Field(name)
		if !ok {
			return fmt.Errorf("%w: %q", types.ErrUnknownField, name)
		}
		if raw == "" {
			delete(data, name)
			continue
		}
		v, err := f.ParseInput(raw)
		if err != nil {
			return err
		}
		data[name] = v
	}
	return nil
}

// printJSON writes any value as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
