package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValidate(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		wantErr error
	}{
		{
			name:  "valid text field",
			field: Field{Name: "title", Type: FieldTypeText},
		},
		{
			name:  "valid required number field",
			field: Field{Name: "rating", Type: FieldTypeNumber, Required: true},
		},
		{
			name:  "valid select field",
			field: Field{Name: "difficulty", Type: FieldTypeSelect, Options: []string{"easy", "hard"}},
		},
		{
			name:    "empty name rejected",
			field:   Field{Name: "", Type: FieldTypeText},
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown type rejected",
			field:   Field{Name: "x", Type: "integer"},
			wantErr: ErrInvalidFieldType,
		},
		{
			name:    "select without options rejected",
			field:   Field{Name: "x", Type: FieldTypeSelect},
			wantErr: ErrNoOptions,
		},
		{
			name:    "options on non-select rejected",
			field:   Field{Name: "x", Type: FieldTypeText, Options: []string{"a"}},
			wantErr: ErrValidation,
		},
		{
			name:    "pipe in name rejected",
			field:   Field{Name: "a|b", Type: FieldTypeText},
			wantErr: ErrValidation,
		},
		{
			name:    "padded option rejected",
			field:   Field{Name: "x", Type: FieldTypeSelect, Options: []string{"easy", " hard"}},
			wantErr: ErrValidation,
		},
		{
			name:    "empty option rejected",
			field:   Field{Name: "x", Type: FieldTypeSelect, Options: []string{""}},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFieldCheck(t *testing.T) {
	sel := Field{Name: "difficulty", Type: FieldTypeSelect, Options: []string{"beginner", "advanced"}}
	num := Field{Name: "rating", Type: FieldTypeNumber}
	txt := Field{Name: "title", Type: FieldTypeText}

	tests := []struct {
		name    string
		field   Field
		value   Value
		wantErr error
	}{
		{name: "matching text", field: txt, value: TextValue("ok")},
		{name: "matching number", field: num, value: NumberValue(4)},
		{name: "declared option", field: sel, value: OptionValue("beginner")},
		{name: "kind mismatch", field: num, value: TextValue("4"), wantErr: ErrKindMismatch},
		{name: "undeclared option", field: sel, value: OptionValue("expert"), wantErr: ErrNotAnOption},
		{name: "newline in text", field: txt, value: TextValue("a\nb"), wantErr: ErrValidation},
		{name: "leading whitespace in text", field: txt, value: TextValue("  padded"), wantErr: ErrValidation},
		{name: "trailing whitespace in text", field: txt, value: TextValue("padded  "), wantErr: ErrValidation},
		{name: "reserved empty-string literal", field: txt, value: TextValue(`""`), wantErr: ErrValidation},
		{name: "empty text is fine", field: txt, value: TextValue("")},
		{name: "padded option value", field: sel, value: OptionValue(" beginner"), wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Check(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFieldParseInput(t *testing.T) {
	date := Field{Name: "when", Type: FieldTypeDate}
	boolean := Field{Name: "done", Type: FieldTypeBoolean}
	sel := Field{Name: "state", Type: FieldTypeSelect, Options: []string{"open", "closed"}}

	t.Run("text is trimmed", func(t *testing.T) {
		v, err := Field{Name: "t", Type: FieldTypeText}.ParseInput("  padded  ")
		require.NoError(t, err)
		assert.True(t, v.Equal(TextValue("padded")))
	})

	t.Run("number", func(t *testing.T) {
		v, err := Field{Name: "n", Type: FieldTypeNumber}.ParseInput("3.5")
		require.NoError(t, err)
		n, ok := v.Number()
		require.True(t, ok)
		assert.Equal(t, 3.5, n)
	})

	t.Run("date", func(t *testing.T) {
		v, err := date.ParseInput("2024-06-01")
		require.NoError(t, err)
		d, ok := v.Date()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("boolean spellings", func(t *testing.T) {
		for _, raw := range []string{"true", "yes", "Y", TrueGlyph} {
			v, err := boolean.ParseInput(raw)
			require.NoError(t, err, raw)
			b, ok := v.Bool()
			require.True(t, ok)
			assert.True(t, b, raw)
		}
		for _, raw := range []string{"false", "no", "N", FalseGlyph} {
			v, err := boolean.ParseInput(raw)
			require.NoError(t, err, raw)
			b, ok := v.Bool()
			require.True(t, ok)
			assert.False(t, b, raw)
		}
	})

	t.Run("select enforces options", func(t *testing.T) {
		_, err := sel.ParseInput("half-open")
		assert.ErrorIs(t, err, ErrNotAnOption)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := Field{Name: "n", Type: FieldTypeNumber}.ParseInput("many")
		assert.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := date.ParseInput("June 1st")
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}
