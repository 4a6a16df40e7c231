package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/listicle/pkg/types"
)

func testCollection(t *testing.T) *types.Collection {
	t.Helper()
	c, err := types.New("Guitar Practice", "music")
	require.NoError(t, err)
	require.NoError(t, c.AddField(types.Field{Name: "song_name", Type: types.FieldTypeText, Required: true}))
	require.NoError(t, c.AddField(types.Field{Name: "rating", Type: types.FieldTypeNumber}))
	require.NoError(t, c.AddField(types.Field{Name: "mastered", Type: types.FieldTypeBoolean}))
	require.NoError(t, c.AddField(types.Field{
		Name:    "difficulty",
		Type:    types.FieldTypeSelect,
		Options: []string{"beginner", "advanced"},
	}))
	return c
}

func TestParseSetArgs(t *testing.T) {
	c := testCollection(t)

	data, err := parseSetArgs(c, []string{
		"song_name=Wonderwall",
		"rating=4.5",
		"mastered=yes",
		"difficulty=beginner",
	})
	require.NoError(t, err)

	assert.True(t, data["song_name"].Equal(types.TextValue("Wonderwall")))
	assert.True(t, data["rating"].Equal(types.NumberValue(4.5)))
	assert.True(t, data["mastered"].Equal(types.BoolValue(true)))
	assert.True(t, data["difficulty"].Equal(types.OptionValue("beginner")))
}

func TestParseSetArgsErrors(t *testing.T) {
	c := testCollection(t)

	tests := []struct {
		name    string
		sets    []string
		wantErr error
	}{
		{name: "unknown field", sets: []string{"album=x"}, wantErr: types.ErrUnknownField},
		{name: "bad number", sets: []string{"rating=lots"}, wantErr: types.ErrKindMismatch},
		{name: "bad option", sets: []string{"difficulty=expert"}, wantErr: types.ErrNotAnOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSetArgs(c, tt.sets)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing equals sign", func(t *testing.T) {
		_, err := parseSetArgs(c, []string{"song_name"})
		assert.Error(t, err)
	})
}

func TestMergeSetArgs(t *testing.T) {
	c := testCollection(t)
	data := map[string]types.Value{
		"song_name": types.TextValue("Wonderwall"),
		"rating":    types.NumberValue(3),
	}

	t.Run("value containing equals sign", func(t *testing.T) {
		err := mergeSetArgs(c, data, []string{"song_name=a=b"})
		require.NoError(t, err)
		assert.True(t, data["song_name"].Equal(types.TextValue("a=b")))
	})

	t.Run("empty value clears the field", func(t *testing.T) {
		err := mergeSetArgs(c, data, []string{"rating="})
		require.NoError(t, err)
		_, ok := data["rating"]
		assert.False(t, ok)
	})
}
