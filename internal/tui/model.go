package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/listicle/internal/store"
	"github.com/dukaforge/listicle/pkg/types"
)

// screen identifies which view is active.
type screen int

const (
	screenList screen = iota
	screenView
	screenForm
)

// collectionEntry adapts a store summary to the bubbles list item interface.
type collectionEntry struct {
	sum types.Summary
}

func (e collectionEntry) Title() string { return e.sum.Name }
func (e collectionEntry) Description() string {
	label := e.sum.Type
	if label == "" {
		label = "collection"
	}
	return fmt.Sprintf("%s · %d items", label, e.sum.ItemCount)
}
func (e collectionEntry) FilterValue() string { return e.sum.Name }

// model holds the state of the browser.
type model struct {
	store  *store.Store
	screen screen

	list    list.Model
	table   table.Model
	current *types.Collection
	form    *itemForm

	status string
	width  int
	height int
}

func newModel(st *store.Store) (*model, error) {
	summaries, err := st.List()
	if err != nil {
		return nil, err
	}
	entries := make([]list.Item, len(summaries))
	for i, s := range summaries {
		entries[i] = collectionEntry{sum: s}
	}

	l := list.New(entries, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Collections"
	l.SetShowStatusBar(false)

	return &model{store: st, screen: screenList, list: l}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		if m.current != nil {
			m.table.SetHeight(msg.Height - 6)
		}
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenView:
			return m.updateView(msg)
		case screenForm:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

func (m *model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		entry, ok := m.list.SelectedItem().(collectionEntry)
		if !ok {
			return m, nil
		}
		c, err := m.store.Load(entry.sum.Name)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.current = c
		m.table = buildTable(c, m.height-6)
		m.screen = screenView
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.status = ""
		return m, m.reloadList()
	case "ctrl+c":
		return m, tea.Quit
	case "a":
		if len(m.current.Fields) == 0 {
			m.status = "collection has no fields yet"
			return m, nil
		}
		m.form = newItemForm(m.current.Fields)
		m.screen = screenForm
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.screen = screenView
		m.status = ""
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		data, err := m.form.values()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if _, err := m.current.AddItem(data); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if err := m.store.Save(m.current); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.form = nil
		m.table = buildTable(m.current, m.height-6)
		m.screen = screenView
		m.status = "item added"
		return m, nil
	}
	return m, m.form.update(msg)
}

// reloadList refreshes the collection summaries after edits.
func (m *model) reloadList() tea.Cmd {
	summaries, err := m.store.List()
	if err != nil {
		m.status = err.Error()
		return nil
	}
	entries := make([]list.Item, len(summaries))
	for i, s := range summaries {
		entries[i] = collectionEntry{sum: s}
	}
	return m.list.SetItems(entries)
}

// buildTable turns a collection into a bubbles table: one column per
// field, one row per item, in declared order.
func buildTable(c *types.Collection, height int) table.Model {
	cols := make([]table.Column, len(c.Fields))
	for i, f := range c.Fields {
		width := len(f.Name)
		for _, it := range c.Items {
			if v, ok := it.Get(f.Name); ok && len(v.String()) > width {
				width = len(v.String())
			}
		}
		if width < 8 {
			width = 8
		}
		if width > 32 {
			width = 32
		}
		cols[i] = table.Column{Title: f.Name, Width: width}
	}

	rows := make([]table.Row, len(c.Items))
	for i, it := range c.Items {
		row := make(table.Row, len(c.Fields))
		for j, f := range c.Fields {
			if v, ok := it.Get(f.Name); ok {
				row[j] = v.String()
			}
		}
		rows[i] = row
	}

	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	return t
}
