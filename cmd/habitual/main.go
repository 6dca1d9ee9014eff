package main

import (
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/analyze"
	"github.com/julianstephens/habitual/internal/cli/backups"
	"github.com/julianstephens/habitual/internal/cli/habits"
	"github.com/julianstephens/habitual/internal/cli/system"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to the YAML config file (default ${config_file})." type:"string"`
	DB      string `name:"db" help:"SQLite database path, PostgreSQL connection string, or \"keyring\". Credentials must NOT be embedded in the connection string; use the OS keyring or ${env_connection} instead." type:"string"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd     `cmd:"" help:"Initialize habitual storage."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored habits for conflicts."`
	Menu     system.MenuCmd     `cmd:"" help:"Run the interactive numbered menu." default:"1"`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the full-screen TUI."`
	Report   system.ReportCmd   `cmd:"" help:"Write a PDF analytics report."`
	Habit    habits.HabitCmd    `cmd:"" help:"Manage habits and completions."`
	Analyze  analyze.AnalyzeCmd `cmd:"" help:"Habit analytics and streaks."`
	Backup   backups.BackupCmd  `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd  `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugCmd system.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track daily and weekly habits and their streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"config_file":    constants.DefaultConfigFile,
			"env_connection": constants.EnvConnection,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	// Flags override the config file and environment
	if CLI.DB != "" {
		cfg.Storage.Path = CLI.DB
		if !config.IsConnString(cfg.Storage.Path) {
			if cfg.Storage.Path, err = config.ExpandPath(cfg.Storage.Path); err != nil {
				errors.Fatal(err)
			}
		}
	}
	if CLI.Debug {
		cfg.Logging.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Logging.Debug, LogDir: cfg.Logging.Dir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Now:    time.Now,
	}

	command := ctx.Command()
	// Keyring commands manage the credentials a store would need.
	if !strings.HasPrefix(command, "keyring") {
		store, err := cli.NewStore(cfg, time.Now)
		if err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
		appCtx.Store = store

		// Init handles its own loading; doctor reports load failures itself.
		if sel := ctx.Selected(); sel == nil || (sel.Name != "init" && sel.Name != "doctor") {
			if err := store.Load(); err != nil {
				errors.Fatal(err)
			}
		}
	}

	logger.Debug("Running command", "command", command)
	if err := ctx.Run(appCtx); err != nil {
		if appCtx.Store != nil {
			appCtx.Store.Close()
		}
		errors.Fatal(err)
	}
}
