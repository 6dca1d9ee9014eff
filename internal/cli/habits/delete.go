package habits

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage"
)

type HabitDeleteCmd struct {
	ID  int64 `arg:"" help:"Habit ID to delete."`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	// Check if habit exists first
	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintln(ctx.Stdout(), "Habit not found.")
			return nil
		}
		return fmt.Errorf("failed to find habit with ID %d: %w", c.ID, err)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete '%s' and all %d completions?", habit.Name, len(habit.Completions))).
					Affirmative("Delete").
					Negative("Cancel").
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation form error: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(ctx.Stdout(), "Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteHabit(c.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	ctx.PerformAutomaticBackup()

	fmt.Fprintf(ctx.Stdout(), "Habit '%s' deleted.\n", habit.Name)
	return nil
}
