// Package tui is the interactive terminal browser for collections: a
// collection list, a read view of a collection's items, and an add-item
// form. It is thin presentation glue; every mutation goes through the
// same Collection methods and Store writes as the CLI.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukaforge/listicle/internal/store"
)

// Run starts the browser and blocks until the user quits.
func Run(st *store.Store) error {
	m, err := newModel(st)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
