package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Padding(0, 1)

	okStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 1, 0, 1)

	formLabelStyle = lipgloss.NewStyle().Bold(true)
)

func (m *model) View() string {
	var body string
	switch m.screen {
	case screenList:
		body = m.list.View()
	case screenView:
		title := m.current.Name
		if m.current.Type != "" {
			title += " (" + m.current.Type + ")"
		}
		body = titleStyle.Render(title) + "\n" +
			m.table.View() + "\n" +
			helpStyle.Render("a add item · esc back · ctrl+c quit")
	case screenForm:
		body = titleStyle.Render(fmt.Sprintf("New item in %s", m.current.Name)) + "\n" +
			m.form.view()
	}

	if m.status == "" {
		return body
	}
	style := statusStyle
	if m.status == "item added" {
		style = okStatusStyle
	}
	return body + "\n" + style.Render(m.status)
}
