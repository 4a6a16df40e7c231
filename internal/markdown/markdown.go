// Package markdown converts collections to and from their on-disk
// representation: a YAML front-matter block followed by a Markdown table.
//
// The format is the persistence contract. For any valid collection c,
// Parse(Render(c)) is semantically equal to c, and Render is deterministic:
// the same collection state always produces byte-identical output.
//
// Cell encodings: text and select values appear verbatim with "|" escaped
// as "\|"; numbers print without a trailing decimal point when integral;
// dates use 2006-01-02; booleans use the fixed glyphs ✓ and ✗. An absent
// value is an empty cell; a text value holding the literal empty string
// is written as "" (two double quotes) to keep the two distinguishable.
//
// Item identity: the front-matter carries an items list with one
// {id, created_at, updated_at} entry per table row, aligned by position,
// so ids survive save/load cycles. Rows not covered by the list (files
// written by hand) are assigned fresh ids on parse.
package markdown

import (
	"fmt"
	"time"

	"github.com/dukaforge/listicle/pkg/types"
)

// delimiter bounds the front-matter block.
const delimiter = "---"

// timeLayout is the front-matter timestamp format.
const timeLayout = time.RFC3339Nano

// emptyStringCell is the cell form of a text value holding the literal
// empty string, as opposed to an absent value (empty cell).
const emptyStringCell = `""`

// frontMatter is the YAML document between the delimiter lines.
type frontMatter struct {
	Collection collectionMeta `yaml:"collection"`
	Fields     []fieldMeta    `yaml:"fields"`
	Items      []itemMeta     `yaml:"items,omitempty"`
}

type collectionMeta struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	CreatedAt string `yaml:"created_at"`
	UpdatedAt string `yaml:"updated_at"`
}

type fieldMeta struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Required bool     `yaml:"required"`
	Options  []string `yaml:"options"`
}

type itemMeta struct {
	ID        string `yaml:"id"`
	CreatedAt string `yaml:"created_at"`
	UpdatedAt string `yaml:"updated_at"`
}

// formatTime renders a timestamp in the front-matter layout.
func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTime reads a front-matter timestamp. The layout accepts both plain
// RFC 3339 and fractional-second forms.
func parseTime(s, what string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad %s timestamp %q", types.ErrFormat, what, s)
	}
	return t, nil
}
