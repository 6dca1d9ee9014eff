package system

import (
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/instance"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/tui"
)

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var errNotTerminal = errors.New("the TUI requires an interactive terminal; use 'habitual menu' or the habit/analyze commands instead")

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if !isTerminal() {
		return errNotTerminal
	}

	lock, err := instance.Acquire(ctx.LockDir())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release session lock", "error", err)
		}
	}()

	// Perform automatic backup on TUI startup
	ctx.PerformAutomaticBackup()

	return tui.Run(ctx.Store, ctx.Clock())
}
