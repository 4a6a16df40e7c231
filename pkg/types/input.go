package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseInput coerces a user-supplied string into a value for this field.
// It is the entry-point coercion shared by the CLI and the TUI; the file
// format has its own, stricter cell decoding in internal/markdown.
//
// Text is trimmed, matching how table cells are read back. Booleans
// accept true/false, yes/no, y/n (case-insensitive) and the table
// glyphs. Dates use the 2006-01-02 layout. Select input must match one
// of the declared options. The returned value still passes through
// Field.Check at the mutation boundary.
func (f Field) ParseInput(raw string) (Value, error) {
	switch f.Type {
	case FieldTypeText:
		return TextValue(strings.TrimSpace(raw)), nil

	case FieldTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w: %q is not a number", f.Name, ErrKindMismatch, raw)
		}
		return NumberValue(n), nil

	case FieldTypeDate:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w: %q is not a date (want %s)", f.Name, ErrKindMismatch, raw, DateLayout)
		}
		return DateValue(t), nil

	case FieldTypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "yes", "y", TrueGlyph:
			return BoolValue(true), nil
		case "false", "no", "n", FalseGlyph:
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("field %q: %w: %q is not a boolean", f.Name, ErrKindMismatch, raw)

	case FieldTypeSelect:
		v := OptionValue(raw)
		if err := f.Check(v); err != nil {
			return Value{}, err
		}
		return v, nil
	}
	return Value{}, fmt.Errorf("field %q: %w: %q", f.Name, ErrInvalidFieldType, f.Type)
}
