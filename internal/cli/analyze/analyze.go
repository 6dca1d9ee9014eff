package analyze

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/validation"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type AnalyzeCmd struct {
	List        ListCmd        `cmd:"" help:"List all habits with their streaks." default:"1"`
	ByFrequency ByFrequencyCmd `cmd:"" name:"by-frequency" help:"List habits grouped by frequency."`
	Longest     LongestCmd     `cmd:"" help:"Show the longest streak across all habits."`
	Streak      StreakCmd      `cmd:"" help:"Show the longest streak for one habit."`
}

func renderTable(w io.Writer, summaries []analytics.Summary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "FREQUENCY", "CURRENT", "LONGEST").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range summaries {
		unit := s.Habit.Frequency.PeriodUnit()
		t.Row(
			strconv.FormatInt(s.Habit.ID, 10),
			s.Habit.Name,
			string(s.Habit.Frequency),
			fmt.Sprintf("%d %s", s.Current, unit),
			fmt.Sprintf("%d %s", s.Longest, unit),
		)
	}
	fmt.Fprintln(w, t.Render())
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	all := analytics.AllHabits(habits)
	if len(all) == 0 {
		fmt.Fprintln(ctx.Stdout(), "No habits found.")
		return nil
	}
	renderTable(ctx.Stdout(), analytics.Summarize(all, ctx.Clock()()))
	return nil
}

type ByFrequencyCmd struct {
	Frequency string `arg:"" optional:"" help:"Only show this frequency (daily or weekly)."`
}

func (c *ByFrequencyCmd) Run(ctx *cli.Context) error {
	frequencies := models.Frequencies()
	if c.Frequency != "" {
		f, err := validation.ParseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		frequencies = []models.Frequency{f}
	}

	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	now := ctx.Clock()()
	for _, f := range frequencies {
		fmt.Fprintln(ctx.Stdout(), titleStyle.Render(f.Title()+" habits"))
		group := analytics.HabitsByFrequency(habits, f)
		if len(group) == 0 {
			fmt.Fprintln(ctx.Stdout(), "  none")
			continue
		}
		renderTable(ctx.Stdout(), analytics.Summarize(group, now))
	}
	return nil
}

type LongestCmd struct{}

func (c *LongestCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	best, streak, found := analytics.LongestStreakAcrossHabits(habits)
	if !found {
		fmt.Fprintln(ctx.Stdout(), "No habits found.")
		return nil
	}
	fmt.Fprintf(ctx.Stdout(), "Longest streak of all habits: '%s' (%s, %d %s)\n",
		best.Name, best.Frequency, streak, best.Frequency.PeriodUnit())
	return nil
}

type StreakCmd struct {
	ID int64 `arg:"" help:"Habit ID."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintln(ctx.Stdout(), "Habit not found.")
			return nil
		}
		return fmt.Errorf("failed to get habit: %w", err)
	}
	unit := habit.Frequency.PeriodUnit()
	fmt.Fprintf(ctx.Stdout(), "Longest streak for habit '%s': %d %s\n", habit.Name, analytics.LongestStreak(habit), unit)
	fmt.Fprintf(ctx.Stdout(), "Current streak: %d %s\n", analytics.CurrentStreak(habit, ctx.Clock()()), unit)
	return nil
}
