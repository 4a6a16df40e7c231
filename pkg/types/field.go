package types

import (
	"fmt"
	"strings"
)

// Field types determine what values a field accepts.
const (
	FieldTypeText    = "text"
	FieldTypeNumber  = "number"
	FieldTypeDate    = "date"
	FieldTypeBoolean = "boolean"
	FieldTypeSelect  = "select"
)

// validFieldTypes is the set of recognized field type values.
var validFieldTypes = map[string]bool{
	FieldTypeText:    true,
	FieldTypeNumber:  true,
	FieldTypeDate:    true,
	FieldTypeBoolean: true,
	FieldTypeSelect:  true,
}

// IsValidFieldType reports whether the given string is a recognized field type.
func IsValidFieldType(ft string) bool {
	return validFieldTypes[ft]
}

// Field defines one column of a collection.
type Field struct {
	Name     string   // Unique within the collection (required, non-empty).
	Type     string   // One of the FieldType constants.
	Required bool     // Items must supply a non-empty value when true.
	Options  []string // Allowed values; meaningful only when Type is select.
}

// Validate checks that the field definition is well-formed. Field names
// become table column headers, so pipes and newlines are rejected.
func (f Field) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field: %w", ErrEmptyName)
	}
	if strings.ContainsAny(f.Name, "|\n\r") {
		return fmt.Errorf("field %q: %w: name must not contain pipes or newlines", f.Name, ErrValidation)
	}
	if !validFieldTypes[f.Type] {
		return fmt.Errorf("field %q: %w: %q", f.Name, ErrInvalidFieldType, f.Type)
	}
	if f.Type == FieldTypeSelect && len(f.Options) == 0 {
		return fmt.Errorf("field %q: %w", f.Name, ErrNoOptions)
	}
	if f.Type != FieldTypeSelect && len(f.Options) > 0 {
		return fmt.Errorf("field %q: %w: options are only valid for select fields", f.Name, ErrValidation)
	}
	for _, o := range f.Options {
		if o == "" || o != strings.TrimSpace(o) || strings.ContainsAny(o, "\n\r") {
			return fmt.Errorf("field %q: %w: option %q is not a valid cell value", f.Name, ErrValidation, o)
		}
	}
	return nil
}

// Check verifies that a value satisfies this field's type, including
// membership in Options for select fields.
func (f Field) Check(v Value) error {
	if v.Kind() != f.Type {
		return fmt.Errorf("field %q: %w: have %s, want %s", f.Name, ErrKindMismatch, v.Kind(), f.Type)
	}
	// Cell values live on one table line and are trimmed when read back;
	// pipes are escaped on render but newlines and padding have no escape,
	// and the bare "" literal is reserved as the empty-string marker.
	if s, ok := v.Text(); ok {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("field %q: %w: text must not contain newlines", f.Name, ErrValidation)
		}
		if s != strings.TrimSpace(s) {
			return fmt.Errorf("field %q: %w: text must not have leading or trailing whitespace", f.Name, ErrValidation)
		}
		if s == `""` {
			return fmt.Errorf("field %q: %w: text %q is reserved for empty cells", f.Name, ErrValidation, s)
		}
	}
	if s, ok := v.Option(); ok {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("field %q: %w: value must not contain newlines", f.Name, ErrValidation)
		}
		if s != strings.TrimSpace(s) {
			return fmt.Errorf("field %q: %w: value must not have leading or trailing whitespace", f.Name, ErrValidation)
		}
	}
	if f.Type == FieldTypeSelect {
		opt, _ := v.Option()
		for _, o := range f.Options {
			if o == opt {
				return nil
			}
		}
		return fmt.Errorf("field %q: %w: %q", f.Name, ErrNotAnOption, opt)
	}
	return nil
}

// Equal reports whether two field definitions are identical.
func (f Field) Equal(o Field) bool {
	if f.Name != o.Name || f.Type != o.Type || f.Required != o.Required {
		return false
	}
	if len(f.Options) != len(o.Options) {
		return false
	}
	for i := range f.Options {
		if f.Options[i] != o.Options[i] {
			return false
		}
	}
	return true
}
