package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	habits []models.Habit
	width  int
}

func New(habits []models.Habit) Model {
	return Model{habits: habits}
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return "No habits found."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Longest streak"))
	b.WriteString("\n")
	if best, streak, found := analytics.LongestStreakAcrossHabits(m.habits); found {
		fmt.Fprintf(&b, "'%s' (%s, %d %s)\n", best.Name, best.Frequency, streak, best.Frequency.PeriodUnit())
	}

	for _, f := range []models.Frequency{models.FrequencyDaily, models.FrequencyWeekly} {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(f.Title() + " habits"))
		b.WriteString("\n")
		group := analytics.HabitsByFrequency(m.habits, f)
		if len(group) == 0 {
			b.WriteString(labelStyle.Render("none"))
			b.WriteString("\n")
			continue
		}
		for _, h := range group {
			fmt.Fprintf(&b, "%d: %s %s\n", h.ID, h.Name,
				labelStyle.Render(fmt.Sprintf("longest %d %s", analytics.LongestStreak(h), f.PeriodUnit())))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}
