package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		// Leave room for the tab bar, status line and help.
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-4)
		m.statsModel.SetWidth(msg.Width - h)
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if handled, cmd := m.handleHabitMessages(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" || (key.Matches(msg, m.keys.Quit) && !m.habitsModel.Filtering()) {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.habitsModel.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
				if m.state == StateHabits {
					m.state = StateStats
				} else {
					m.state = StateHabits
				}
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleHabitMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: models.FrequencyDaily}
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
		return true, m.form.Init()

	case habits.CompleteHabitMsg:
		m.completeHabit(msg.ID)
		return true, nil

	case habits.DeleteHabitMsg:
		m.toDelete = &pendingDelete{id: msg.ID, name: msg.Name}
		m.state = StateConfirmDelete
		return true, nil
	}
	return false, nil
}

func (m *Model) completeHabit(id int64) {
	idx, ok := m.find(id)
	if !ok {
		m.status = "Habit not found."
		return
	}
	habit := &m.habits[idx]
	now := m.now()
	if !habit.Complete(now) {
		m.status = "Habit has already been completed for this period."
		return
	}
	if err := m.store.RecordCompletion(habit.ID, now); err != nil {
		habit.Completions = habit.Completions[:len(habit.Completions)-1]
		logger.Error("Failed to record completion", "id", habit.ID, "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}
	m.status = fmt.Sprintf("Habit '%s' completed.", habit.Name)
	m.refresh()
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		habit, err := m.store.CreateHabit(m.habitForm.Name, m.habitForm.Frequency)
		if err != nil {
			// Stay in the form so the user can retry or cancel.
			logger.Error("Failed to create habit", "error", err)
			m.status = fmt.Sprintf("Error: %v", err)
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.habits = append(m.habits, habit)
		m.status = fmt.Sprintf("Habit '%s' added.", habit.Name)
		m.refresh()
		m.state = StateHabits
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if err := m.deleteHabit(m.toDelete.id); err != nil {
			logger.Error("Failed to delete habit", "id", m.toDelete.id, "error", err)
			m.status = fmt.Sprintf("Error: %v", err)
		} else {
			m.status = fmt.Sprintf("Habit '%s' deleted.", m.toDelete.name)
		}
		m.toDelete = nil
		m.state = StateHabits
	case key.Matches(keyMsg, m.keys.Cancel):
		m.toDelete = nil
		m.state = StateHabits
	}
	return m, nil
}

func (m *Model) deleteHabit(id int64) error {
	if err := m.store.DeleteHabit(id); err != nil {
		return err
	}
	if idx, ok := m.find(id); ok {
		m.habits = append(m.habits[:idx], m.habits[idx+1:]...)
	}
	m.refresh()
	return nil
}
