package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// practiceCollection builds the collection used across these tests:
// song_name (text, required), artist (text), difficulty (select).
func practiceCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := New("Guitar Practice", "music")
	require.NoError(t, err)
	require.NoError(t, c.AddField(Field{Name: "song_name", Type: FieldTypeText, Required: true}))
	require.NoError(t, c.AddField(Field{Name: "artist", Type: FieldTypeText}))
	require.NoError(t, c.AddField(Field{
		Name:    "difficulty",
		Type:    FieldTypeSelect,
		Options: []string{"beginner", "intermediate", "advanced"},
	}))
	return c
}

func TestNew(t *testing.T) {
	c, err := New("Reading", "books")
	require.NoError(t, err)
	assert.Equal(t, "Reading", c.Name)
	assert.Equal(t, "books", c.Type)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.Before(c.CreatedAt))

	_, err = New("", "books")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = New("a\nb", "books")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddField(t *testing.T) {
	c := practiceCollection(t)

	t.Run("duplicate name rejected", func(t *testing.T) {
		err := c.AddField(Field{Name: "artist", Type: FieldTypeText})
		assert.ErrorIs(t, err, ErrDuplicateField)
	})

	t.Run("required field rejected once items exist", func(t *testing.T) {
		_, err := c.AddItem(map[string]Value{"song_name": TextValue("Wonderwall")})
		require.NoError(t, err)

		err = c.AddField(Field{Name: "tuning", Type: FieldTypeText, Required: true})
		assert.ErrorIs(t, err, ErrValidation)

		err = c.AddField(Field{Name: "tuning", Type: FieldTypeText})
		assert.NoError(t, err, "optional fields can always be added")
	})
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]Value
		wantErr error
	}{
		{
			name: "valid item",
			data: map[string]Value{
				"song_name":  TextValue("Wonderwall"),
				"artist":     TextValue("Oasis"),
				"difficulty": OptionValue("beginner"),
			},
		},
		{
			name: "optional fields may be absent",
			data: map[string]Value{"song_name": TextValue("Yesterday")},
		},
		{
			name:    "unknown field rejected",
			data:    map[string]Value{"song_name": TextValue("x"), "album": TextValue("y")},
			wantErr: ErrUnknownField,
		},
		{
			name:    "missing required rejected",
			data:    map[string]Value{"artist": TextValue("Oasis")},
			wantErr: ErrMissingRequired,
		},
		{
			name:    "empty required text rejected",
			data:    map[string]Value{"song_name": TextValue("")},
			wantErr: ErrMissingRequired,
		},
		{
			name: "kind mismatch rejected",
			data: map[string]Value{
				"song_name": TextValue("x"),
				"artist":    NumberValue(5),
			},
			wantErr: ErrKindMismatch,
		},
		{
			name: "value outside options rejected",
			data: map[string]Value{
				"song_name":  TextValue("x"),
				"difficulty": OptionValue("impossible"),
			},
			wantErr: ErrNotAnOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := practiceCollection(t)
			before := len(c.Items)

			it, err := c.AddItem(tt.data)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Len(t, c.Items, before, "failed add must not modify the collection")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, it)
			assert.NotEmpty(t, it.ID)
			assert.Len(t, c.Items, before+1)
			assert.False(t, it.UpdatedAt.Before(it.CreatedAt))
		})
	}
}

func TestAddItemGeneratesUniqueIDs(t *testing.T) {
	c := practiceCollection(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		it, err := c.AddItem(map[string]Value{"song_name": TextValue("s")})
		require.NoError(t, err)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestUpdateItem(t *testing.T) {
	c := practiceCollection(t)
	it, err := c.AddItem(map[string]Value{
		"song_name":  TextValue("Wonderwall"),
		"difficulty": OptionValue("beginner"),
	})
	require.NoError(t, err)

	t.Run("valid update replaces data and refreshes timestamp", func(t *testing.T) {
		err := c.UpdateItem(it.ID, map[string]Value{
			"song_name":  TextValue("Wonderwall"),
			"difficulty": OptionValue("intermediate"),
		})
		require.NoError(t, err)
		v, ok := it.Get("difficulty")
		require.True(t, ok)
		assert.True(t, v.Equal(OptionValue("intermediate")))
		assert.False(t, it.UpdatedAt.Before(it.CreatedAt))
	})

	t.Run("invalid update leaves prior state intact", func(t *testing.T) {
		before := it.UpdatedAt
		err := c.UpdateItem(it.ID, map[string]Value{
			"song_name": TextValue("Wonderwall"),
			"album":     TextValue("Morning Glory"),
		})
		assert.ErrorIs(t, err, ErrUnknownField)
		v, ok := it.Get("difficulty")
		require.True(t, ok)
		assert.True(t, v.Equal(OptionValue("intermediate")), "data unchanged")
		assert.True(t, it.UpdatedAt.Equal(before), "timestamp unchanged")
	})

	t.Run("unknown id", func(t *testing.T) {
		err := c.UpdateItem("no-such-id", map[string]Value{"song_name": TextValue("x")})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	c := practiceCollection(t)
	first, err := c.AddItem(map[string]Value{"song_name": TextValue("one")})
	require.NoError(t, err)
	second, err := c.AddItem(map[string]Value{"song_name": TextValue("two")})
	require.NoError(t, err)

	require.NoError(t, c.RemoveItem(first.ID))
	require.Len(t, c.Items, 1)
	assert.Equal(t, second.ID, c.Items[0].ID, "remaining order preserved")

	assert.ErrorIs(t, c.RemoveItem(first.ID), ErrItemNotFound)
}

func TestCollectionEqual(t *testing.T) {
	c := practiceCollection(t)
	_, err := c.AddItem(map[string]Value{"song_name": TextValue("Wonderwall")})
	require.NoError(t, err)

	clone := *c
	assert.True(t, c.Equal(&clone))

	other := practiceCollection(t)
	assert.False(t, c.Equal(other), "different timestamps and items")
}
