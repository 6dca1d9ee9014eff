package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitual/internal/analytics"
)

type AddHabitMsg struct{}

type CompleteHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID   int64
	Name string
}

type Item struct {
	Summary analytics.Summary
}

func (i Item) Title() string {
	mark := "○ "
	if i.Summary.CompletedForPeriod {
		mark = "✓ "
	}
	return fmt.Sprintf("%s%s (%s)", mark, i.Summary.Habit.Name, i.Summary.Habit.Frequency.Title())
}

func (i Item) Description() string {
	unit := i.Summary.Habit.Frequency.PeriodUnit()
	return fmt.Sprintf("#%d · current %d %s · longest %d %s",
		i.Summary.Habit.ID, i.Summary.Current, unit, i.Summary.Longest, unit)
}

func (i Item) FilterValue() string { return i.Summary.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(summaries []analytics.Summary, width, height int) Model {
	l := list.New(toItems(summaries), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(summaries []analytics.Summary) []list.Item {
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		items[i] = Item{Summary: s}
	}
	return items
}

func (m *Model) SetSummaries(summaries []analytics.Summary) {
	m.list.SetItems(toItems(summaries))
}

// Filtering reports whether the list is capturing keys for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Summary.CompletedForPeriod {
				return m, func() tea.Msg { return CompleteHabitMsg{ID: i.Summary.Habit.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Summary.Habit.ID, Name: i.Summary.Habit.Name} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Select moves the cursor to the item at index.
func (m *Model) Select(index int) {
	m.list.Select(index)
}
