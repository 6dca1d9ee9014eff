package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/report"
)

type ReportCmd struct {
	Out string `help:"Output PDF path." short:"o" default:"habits.pdf" type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	path, err := config.ExpandPath(c.Out)
	if err != nil {
		return err
	}
	if err := report.WriteFile(path, habits, ctx.Clock()()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "✓ Report written: %s (%d habits)\n", path, len(habits))
	return nil
}
