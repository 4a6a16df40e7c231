package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/listicle/pkg/types"
)

// Render produces the on-disk text for a collection. The collection is
// validated first; Render never writes a document Parse would reject.
func Render(c *types.Collection) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fm := frontMatter{
		Collection: collectionMeta{
			Name:      c.Name,
			Type:      c.Type,
			CreatedAt: formatTime(c.CreatedAt),
			UpdatedAt: formatTime(c.UpdatedAt),
		},
		Fields: make([]fieldMeta, len(c.Fields)),
		Items:  make([]itemMeta, 0, len(c.Items)),
	}
	for i, f := range c.Fields {
		fm.Fields[i] = fieldMeta{
			Name:     f.Name,
			Type:     f.Type,
			Required: f.Required,
			Options:  f.Options,
		}
	}
	for _, it := range c.Items {
		fm.Items = append(fm.Items, itemMeta{
			ID:        it.ID,
			CreatedAt: formatTime(it.CreatedAt),
			UpdatedAt: formatTime(it.UpdatedAt),
		})
	}

	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(delimiter + "\n")
	sb.Write(meta)
	sb.WriteString(delimiter + "\n\n")
	sb.WriteString("# " + c.Name + "\n")

	if len(c.Fields) > 0 {
		sb.WriteString("\n")
		writeRow(&sb, c.FieldNames())
		sep := make([]string, len(c.Fields))
		for i := range sep {
			sep[i] = "---"
		}
		writeRow(&sb, sep)
		for _, it := range c.Items {
			cells := make([]string, len(c.Fields))
			for i, f := range c.Fields {
				cells[i] = renderCell(it.Data[f.Name])
			}
			writeRow(&sb, cells)
		}
	}

	return []byte(sb.String()), nil
}

// writeRow writes one table line: cells joined by pipes with single-space
// padding.
func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

// renderCell returns the cell text for a value: empty for the zero Value
// (absent), the reserved "" token for an empty text string, otherwise the
// display form with pipes escaped.
func renderCell(v types.Value) string {
	if v.IsZero() {
		return ""
	}
	if s, ok := v.Text(); ok && s == "" {
		return emptyStringCell
	}
	return escapeCell(v.String())
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
