package habits

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage"
)

type HabitCompleteCmd struct {
	ID int64 `arg:"" help:"Habit ID to mark as completed."`
}

func (c *HabitCompleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintln(ctx.Stdout(), "Habit not found.")
			return nil
		}
		return fmt.Errorf("failed to get habit: %w", err)
	}

	now := ctx.Clock()()
	if !habit.Complete(now) {
		fmt.Fprintln(ctx.Stdout(), "Habit has already been completed for this period.")
		return nil
	}
	if err := ctx.Store.RecordCompletion(habit.ID, now); err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}
	ctx.PerformAutomaticBackup()

	fmt.Fprintf(ctx.Stdout(), "Habit '%s' completed.\n", habit.Name)
	return nil
}
