package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.habitsModel.View()
	case StateStats:
		content = docStyle.Render(m.statsModel.View())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active != StateStats {
		active = StateHabits
	}
	var tabs []string
	for i, title := range tabTitles {
		if SessionState(i) == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	if m.toDelete == nil {
		return ""
	}
	return docStyle.Render(fmt.Sprintf("%s\n\nDelete '%s' and all of its completions? (y/n)",
		dangerStyle.Render("Delete habit"), m.toDelete.name))
}
