package types

import (
	"encoding/json"
	"strconv"
	"time"
)

// Display glyphs for boolean values. These are part of the file format
// contract and must not change between releases.
const (
	TrueGlyph  = "✓"
	FalseGlyph = "✗"
)

// DateLayout is the serialized form of date values (day precision).
const DateLayout = "2006-01-02"

// Value is a tagged union over the five field kinds. The zero Value is
// invalid and is never stored on an item; absence of a value is expressed
// by the key being absent from Item.Data.
type Value struct {
	kind string
	text string
	num  float64
	b    bool
	date time.Time
}

// TextValue returns a text-kind value.
func TextValue(s string) Value {
	return Value{kind: FieldTypeText, text: s}
}

// NumberValue returns a number-kind value.
func NumberValue(f float64) Value {
	return Value{kind: FieldTypeNumber, num: f}
}

// DateValue returns a date-kind value, truncated to day precision in UTC.
func DateValue(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: FieldTypeDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// BoolValue returns a boolean-kind value.
func BoolValue(b bool) Value {
	return Value{kind: FieldTypeBoolean, b: b}
}

// OptionValue returns a select-kind value. Membership in the field's
// options is checked by Field.Check, not here.
func OptionValue(s string) Value {
	return Value{kind: FieldTypeSelect, text: s}
}

// Kind returns the FieldType constant this value satisfies, or the empty
// string for the zero Value.
func (v Value) Kind() string { return v.kind }

// IsZero reports whether v is the invalid zero Value.
func (v Value) IsZero() bool { return v.kind == "" }

// Text returns the string content of a text value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == FieldTypeText
}

// Number returns the numeric content of a number value.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == FieldTypeNumber
}

// Date returns the day-precision timestamp of a date value.
func (v Value) Date() (time.Time, bool) {
	return v.date, v.kind == FieldTypeDate
}

// Bool returns the content of a boolean value.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == FieldTypeBoolean
}

// Option returns the selected option of a select value.
func (v Value) Option() (string, bool) {
	return v.text, v.kind == FieldTypeSelect
}

// String returns the display form of the value: text and select content
// verbatim, numbers without a trailing decimal point when integral, dates
// as DateLayout, booleans as the fixed glyphs. The zero Value renders as
// the empty string.
func (v Value) String() string {
	switch v.kind {
	case FieldTypeText, FieldTypeSelect:
		return v.text
	case FieldTypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case FieldTypeDate:
		return v.date.Format(DateLayout)
	case FieldTypeBoolean:
		if v.b {
			return TrueGlyph
		}
		return FalseGlyph
	}
	return ""
}

// MarshalJSON emits the natural JSON form of the value: strings for text,
// select, and date (DateLayout), numbers and booleans as themselves.
// Used by the CLI's --json output.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case FieldTypeNumber:
		return json.Marshal(v.num)
	case FieldTypeBoolean:
		return json.Marshal(v.b)
	case FieldTypeDate:
		return json.Marshal(v.date.Format(DateLayout))
	}
	return json.Marshal(v.text)
}

// Equal reports whether two values have the same kind and content.
// Dates compare by instant, so two DateValues are equal iff they name
// the same day.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case FieldTypeText, FieldTypeSelect:
		return v.text == o.text
	case FieldTypeNumber:
		return v.num == o.num
	case FieldTypeDate:
		return v.date.Equal(o.date)
	case FieldTypeBoolean:
		return v.b == o.b
	}
	return true
}
