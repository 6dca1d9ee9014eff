package habits

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/validation"
)

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name (3-20 characters)."`
	Frequency string `help:"Habit frequency (daily or weekly)." short:"f" required:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	frequency, err := validation.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.CreateHabit(c.Name, frequency)
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	ctx.PerformAutomaticBackup()

	fmt.Fprintf(ctx.Stdout(), "Habit '%s' added. (ID: %d)\n", habit.Name, habit.ID)
	return nil
}
