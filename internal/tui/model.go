package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/tui/components/habits"
	"github.com/julianstephens/habitual/internal/tui/components/stats"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateAddHabit
	StateConfirmDelete
)

var tabTitles = []string{"Habits", "Stats"}

type HabitFormModel struct {
	Name      string
	Frequency models.Frequency
}

type pendingDelete struct {
	id   int64
	name string
}

type Model struct {
	store       storage.Provider
	now         func() time.Time
	state       SessionState
	keys        KeyMap
	help        help.Model
	habits      []models.Habit
	habitsModel habits.Model
	statsModel  stats.Model
	form        *huh.Form
	habitForm   *HabitFormModel
	toDelete    *pendingDelete
	status      string
	quitting    bool
	width       int
	height      int
}

// NewModel builds the UI over habits already loaded from store.
func NewModel(store storage.Provider, habitList []models.Habit, now func() time.Time) Model {
	return Model{
		store:       store,
		now:         now,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habits:      habitList,
		habitsModel: habits.New(analytics.Summarize(habitList, now()), 80, 20),
		statsModel:  stats.New(habitList),
	}
}

func (m Model) Init() tea.Cmd {
	return m.habitsModel.Init()
}

// refresh recomputes the derived views after the collection changed.
func (m *Model) refresh() {
	m.habitsModel.SetSummaries(analytics.Summarize(m.habits, m.now()))
	m.statsModel.SetHabits(m.habits)
}

func (m *Model) find(id int64) (int, bool) {
	for i := range m.habits {
		if m.habits[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Habits returns the session's current collection.
func (m Model) Habits() []models.Habit {
	return m.habits
}
