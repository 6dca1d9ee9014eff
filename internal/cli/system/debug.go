package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage"
)

type DebugCmd struct {
	DBPath     DebugDBPathCmd     `cmd:"" name:"db-path" help:"Show database path."`
	DumpHabit  DebugDumpHabitCmd  `cmd:"" help:"Dump one habit, or all habits, as JSON."`
	DumpConfig DebugDumpConfigCmd `cmd:"" help:"Dump the effective configuration as JSON."`
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	// Output in machine-readable format
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpHabitCmd struct {
	ID int64 `arg:"" optional:"" help:"Habit ID to dump (all habits when omitted)."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	if cmd.ID == 0 {
		habits, err := ctx.Store.ListHabits()
		if err != nil {
			return fmt.Errorf("failed to get habits: %w", err)
		}
		return printJSON(ctx, habits)
	}

	habit, err := ctx.Store.GetHabit(cmd.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("habit not found: %d", cmd.ID)
		}
		return fmt.Errorf("failed to get habit: %w", err)
	}
	return printJSON(ctx, habit)
}

type DebugDumpConfigCmd struct{}

func (cmd *DebugDumpConfigCmd) Run(ctx *cli.Context) error {
	if ctx.Config == nil {
		return errors.New("no configuration loaded")
	}
	cfg := *ctx.Config
	// Never echo a connection string; it may carry a password.
	cfg.Storage.Path = maskPassword(cfg.Storage.Path)
	return printJSON(ctx, cfg)
}
