package habits

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Fprintln(ctx.Stdout(), "No habits found.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "FREQUENCY", "CREATED", "DONE", "COMPLETIONS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, s := range analytics.Summarize(habits, ctx.Clock()()) {
		done := "no"
		if s.CompletedForPeriod {
			done = "yes"
		}
		t.Row(
			strconv.FormatInt(s.Habit.ID, 10),
			s.Habit.Name,
			string(s.Habit.Frequency),
			s.Habit.CreatedAt.Format(constants.DateFormat),
			done,
			strconv.Itoa(s.TotalCompletions),
		)
	}

	fmt.Fprintln(ctx.Stdout(), t.Render())
	return nil
}
