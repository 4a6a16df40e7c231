package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/listicle/pkg/types"
)

// Parse reconstructs a collection from its on-disk text. It is the
// inverse of Render: fields are rebuilt first, then every table row is
// validated against them. Structural problems (missing delimiter, bad
// metadata, wrong cell count) surface as ErrFormat; cell content that
// does not satisfy its field surfaces as ErrValidation naming the row
// and field. The input is never modified.
func Parse(raw []byte) (*types.Collection, error) {
	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("%w: malformed front-matter: %v", types.ErrFormat, err)
	}

	c, err := collectionFromMeta(fm)
	if err != nil {
		return nil, err
	}

	lines := tableLines(body)
	if len(lines) == 0 {
		return c, nil
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: table is missing its separator row", types.ErrFormat)
	}
	if err := checkHeader(lines[0], c.FieldNames()); err != nil {
		return nil, err
	}
	if err := checkSeparator(lines[1], len(c.Fields)); err != nil {
		return nil, err
	}

	seenIDs := make(map[string]bool)
	for i, line := range lines[2:] {
		row := i + 1
		cells := splitRow(line)
		if len(cells) != len(c.Fields) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", types.ErrFormat, row, len(cells), len(c.Fields))
		}
		data := make(map[string]types.Value, len(c.Fields))
		for j, f := range c.Fields {
			v, present, err := parseCell(f, cells[j], row)
			if err != nil {
				return nil, err
			}
			if present {
				data[f.Name] = v
			}
		}
		it := &types.Item{Data: data}
		if err := applyItemMeta(it, fm.Items, i, c); err != nil {
			return nil, err
		}
		if seenIDs[it.ID] {
			return nil, fmt.Errorf("%w: duplicate item id %q", types.ErrFormat, it.ID)
		}
		seenIDs[it.ID] = true
		c.Items = append(c.Items, it)
	}
	return c, nil
}

// ParseSummary reads only the metadata block and counts table rows without
// decoding cell content. Store.List uses it to keep listing fast.
func ParseSummary(raw []byte) (*types.Summary, error) {
	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("%w: malformed front-matter: %v", types.ErrFormat, err)
	}
	if fm.Collection.Name == "" {
		return nil, fmt.Errorf("%w: missing collection name", types.ErrFormat)
	}
	updated, err := parseTime(fm.Collection.UpdatedAt, "collection updated_at")
	if err != nil {
		return nil, err
	}

	count := len(tableLines(body)) - 2 // header and separator
	if count < 0 {
		count = 0
	}
	return &types.Summary{
		Name:      fm.Collection.Name,
		Type:      fm.Collection.Type,
		ItemCount: count,
		UpdatedAt: updated,
	}, nil
}

// splitFrontMatter separates the delimited metadata block from the body.
func splitFrontMatter(s string) (meta, body string, err error) {
	if !strings.HasPrefix(s, delimiter+"\n") {
		return "", "", fmt.Errorf("%w: missing front-matter delimiter", types.ErrFormat)
	}
	rest := s[len(delimiter)+1:]
	closing := "\n" + delimiter + "\n"
	idx := strings.Index(rest, closing)
	if idx == -1 {
		if strings.HasSuffix(rest, "\n"+delimiter) {
			return rest[:len(rest)-len(delimiter)-1], "", nil
		}
		return "", "", fmt.Errorf("%w: unclosed front-matter block", types.ErrFormat)
	}
	return rest[:idx], rest[idx+len(closing):], nil
}

// collectionFromMeta builds the collection shell (no items) from the
// front-matter, rejecting malformed metadata as ErrFormat.
func collectionFromMeta(fm frontMatter) (*types.Collection, error) {
	if fm.Collection.Name == "" {
		return nil, fmt.Errorf("%w: missing collection name", types.ErrFormat)
	}
	created, err := parseTime(fm.Collection.CreatedAt, "collection created_at")
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(fm.Collection.UpdatedAt, "collection updated_at")
	if err != nil {
		return nil, err
	}

	c := &types.Collection{
		Name:      fm.Collection.Name,
		Type:      fm.Collection.Type,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	seen := make(map[string]bool, len(fm.Fields))
	for _, fmeta := range fm.Fields {
		if !types.IsValidFieldType(fmeta.Type) {
			return nil, fmt.Errorf("%w: field %q has unrecognized type %q", types.ErrFormat, fmeta.Name, fmeta.Type)
		}
		f := types.Field{
			Name:     fmeta.Name,
			Type:     fmeta.Type,
			Required: fmeta.Required,
			Options:  fmeta.Options,
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: bad field definition: %v", types.ErrFormat, err)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate field %q", types.ErrFormat, f.Name)
		}
		seen[f.Name] = true
		c.Fields = append(c.Fields, f)
	}
	return c, nil
}

// applyItemMeta assigns identity to the item for table row index i. Rows
// covered by the front-matter items list keep their persisted id and
// timestamps; uncovered rows (hand-authored files) get a fresh id and the
// collection timestamps.
func applyItemMeta(it *types.Item, metas []itemMeta, i int, c *types.Collection) error {
	if i < len(metas) && metas[i].ID != "" {
		created, err := parseTime(metas[i].CreatedAt, "item created_at")
		if err != nil {
			return err
		}
		updated, err := parseTime(metas[i].UpdatedAt, "item updated_at")
		if err != nil {
			return err
		}
		if updated.Before(created) {
			return fmt.Errorf("%w: item %q: updated_at precedes created_at", types.ErrFormat, metas[i].ID)
		}
		it.ID = metas[i].ID
		it.CreatedAt = created
		it.UpdatedAt = updated
		return nil
	}
	it.ID = types.NewItemID()
	it.CreatedAt = c.CreatedAt
	it.UpdatedAt = c.UpdatedAt
	return nil
}

// tableLines returns the consecutive pipe-prefixed lines of the first
// table in the body. Blank lines inside the table are skipped; the first
// other line ends it.
func tableLines(body string) []string {
	var lines []string
	started := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") {
			lines = append(lines, trimmed)
			started = true
			continue
		}
		if started && trimmed != "" {
			break
		}
	}
	return lines
}

// checkHeader verifies that the header row names exactly the declared
// fields, in order.
func checkHeader(line string, fieldNames []string) error {
	cells := splitRow(line)
	if len(cells) != len(fieldNames) {
		return fmt.Errorf("%w: header has %d columns, want %d", types.ErrFormat, len(cells), len(fieldNames))
	}
	for i, cell := range cells {
		if unescapeCell(cell) != fieldNames[i] {
			return fmt.Errorf("%w: unknown column %q (want %q)", types.ErrFormat, cell, fieldNames[i])
		}
	}
	return nil
}

// checkSeparator verifies the |---|---| row under the header.
func checkSeparator(line string, columns int) error {
	cells := splitRow(line)
	if len(cells) != columns {
		return fmt.Errorf("%w: separator has %d columns, want %d", types.ErrFormat, len(cells), columns)
	}
	for _, cell := range cells {
		if cell == "" || strings.Trim(cell, "-") != "" {
			return fmt.Errorf("%w: malformed separator cell %q", types.ErrFormat, cell)
		}
	}
	return nil
}

// splitRow splits a pipe-delimited table line into trimmed cells, leaving
// escaped pipes (\|) intact for the caller to unescape.
func splitRow(line string) []string {
	body := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '\\' && i+1 < len(body) && body[i+1] == '|' {
			cur.WriteString(`\|`)
			i++
			continue
		}
		if ch == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(ch)
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

func unescapeCell(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}

// parseCell decodes one cell under its field's declared type. An empty
// cell is an absent value; for required fields that is a validation error
// naming the row and field, as is content that does not satisfy the type.
func parseCell(f types.Field, cell string, row int) (types.Value, bool, error) {
	if cell == "" {
		if f.Required {
			return types.Value{}, false, fmt.Errorf("row %d, field %q: %w", row, f.Name, types.ErrMissingRequired)
		}
		return types.Value{}, false, nil
	}

	switch f.Type {
	case types.FieldTypeText:
		if cell == emptyStringCell {
			if f.Required {
				return types.Value{}, false, fmt.Errorf("row %d, field %q: %w", row, f.Name, types.ErrMissingRequired)
			}
			return types.TextValue(""), true, nil
		}
		return types.TextValue(unescapeCell(cell)), true, nil

	case types.FieldTypeNumber:
		n, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return types.Value{}, false, fmt.Errorf("row %d, field %q: %w: %q is not a number", row, f.Name, types.ErrKindMismatch, cell)
		}
		return types.NumberValue(n), true, nil

	case types.FieldTypeDate:
		t, err := time.Parse(types.DateLayout, cell)
		if err != nil {
			return types.Value{}, false, fmt.Errorf("row %d, field %q: %w: %q is not a date (want %s)", row, f.Name, types.ErrKindMismatch, cell, types.DateLayout)
		}
		return types.DateValue(t), true, nil

	case types.FieldTypeBoolean:
		switch cell {
		case types.TrueGlyph:
			return types.BoolValue(true), true, nil
		case types.FalseGlyph:
			return types.BoolValue(false), true, nil
		}
		return types.Value{}, false, fmt.Errorf("row %d, field %q: %w: %q is not a boolean (want %s or %s)", row, f.Name, types.ErrKindMismatch, cell, types.TrueGlyph, types.FalseGlyph)

	case types.FieldTypeSelect:
		v := types.OptionValue(unescapeCell(cell))
		if err := f.Check(v); err != nil {
			return types.Value{}, false, fmt.Errorf("row %d: %w", row, err)
		}
		return v, true, nil
	}

	// Unreachable: field types are checked when the metadata is read.
	return types.Value{}, false, fmt.Errorf("row %d, field %q: %w: %q", row, f.Name, types.ErrInvalidFieldType, f.Type)
}
