package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/instance"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/shell"
)

// MenuCmd runs the numbered interactive menu.
type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *cli.Context) error {
	lock, err := instance.Acquire(ctx.LockDir())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release session lock", "error", err)
		}
	}()

	ctx.PerformAutomaticBackup()

	if err := shell.New(ctx.Store, ctx.Stdin(), ctx.Stdout(), ctx.Clock()).Run(); err != nil {
		return fmt.Errorf("menu session failed: %w", err)
	}
	return nil
}
