package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/listicle/pkg/types"
)

// itemForm is the add-item screen. Text, number, and date fields get a
// text input; boolean and select fields get a choice that left/right or
// space cycles through, with an extra blank entry for "no value".
type itemForm struct {
	fields []types.Field
	inputs []formInput
	focus  int
}

// formInput is one form line. choices is nil for typed fields; otherwise
// choice indexes into it and index 0 is the blank entry.
type formInput struct {
	field   types.Field
	text    textinput.Model
	choices []string
	choice  int
}

func newItemForm(fields []types.Field) *itemForm {
	f := &itemForm{fields: fields}
	f.inputs = make([]formInput, len(fields))
	for i, fld := range fields {
		in := formInput{field: fld}
		switch fld.Type {
		case types.FieldTypeBoolean:
			in.choices = []string{"", types.TrueGlyph, types.FalseGlyph}
		case types.FieldTypeSelect:
			in.choices = append([]string{""}, fld.Options...)
		default:
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = placeholderFor(fld)
			ti.CharLimit = 256
			if i == 0 {
				ti.Focus()
			}
			in.text = ti
		}
		f.inputs[i] = in
	}
	return f
}

// placeholderFor hints the expected input for a typed field.
func placeholderFor(f types.Field) string {
	switch f.Type {
	case types.FieldTypeNumber:
		return "number"
	case types.FieldTypeDate:
		return types.DateLayout
	}
	return ""
}

// update routes key events: tab and shift+tab move focus, left/right and
// space cycle a choice input, everything else goes to the focused text
// input.
func (f *itemForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	}
	in := &f.inputs[f.focus]
	if in.choices != nil {
		switch msg.String() {
		case "left":
			in.choice = (in.choice - 1 + len(in.choices)) % len(in.choices)
		case "right", " ":
			in.choice = (in.choice + 1) % len(in.choices)
		}
		return nil
	}
	var cmd tea.Cmd
	in.text, cmd = in.text.Update(msg)
	return cmd
}

func (f *itemForm) setFocus(i int) {
	if in := &f.inputs[f.focus]; in.choices == nil {
		in.text.Blur()
	}
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	if in := &f.inputs[f.focus]; in.choices == nil {
		in.text.Focus()
	}
}

// values coerces every non-empty input by its field type. Validation of
// the assembled map (required fields, options) happens in AddItem.
func (f *itemForm) values() (map[string]types.Value, error) {
	data := make(map[string]types.Value, len(f.fields))
	for i := range f.inputs {
		in := &f.inputs[i]
		raw := ""
		if in.choices != nil {
			raw = in.choices[in.choice]
		} else {
			raw = strings.TrimSpace(in.text.Value())
		}
		if raw == "" {
			continue
		}
		v, err := in.field.ParseInput(raw)
		if err != nil {
			return nil, err
		}
		data[in.field.Name] = v
	}
	return data, nil
}

// view renders the form: a label and input line per field.
func (f *itemForm) view() string {
	var sb strings.Builder
	for i := range f.inputs {
		in := &f.inputs[i]
		label := in.field.Name
		if in.field.Required {
			label += " *"
		}
		sb.WriteString(formLabelStyle.Render(label))
		sb.WriteString("\n")
		sb.WriteString(in.view(i == f.focus))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("enter save · tab next field · ←/→ cycle · esc cancel"))
	return sb.String()
}

func (in *formInput) view(focused bool) string {
	if in.choices == nil {
		return in.text.View()
	}
	label := in.choices[in.choice]
	if label == "" {
		label = "(none)"
	}
	if focused {
		return "‹ " + label + " ›"
	}
	return "  " + label
}
