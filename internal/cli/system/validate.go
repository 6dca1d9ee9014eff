package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	result := validation.New(ctx.Clock()).ValidateHabits(habits)
	fmt.Fprint(ctx.Stdout(), result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("validation found %d conflict(s)", len(result.Conflicts))
	}
	fmt.Fprintln(ctx.Stdout())
	return nil
}
