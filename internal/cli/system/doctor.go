package system

import (
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database is unreachable.
	needsDB bool
	// warnOnly failures do not fail the run.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	dbReachable := true
	for i, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Fprintf(out, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Fprintf(out, "✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Fprintf(out, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(out, "   %v\n", err)
		default:
			reportFailure(out, c.name, err)
			hasError = true
			if i == 0 {
				dbReachable = false
			}
		}
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func reportFailure(out io.Writer, name string, err error) {
	fmt.Fprintf(out, "❌ %s: FAIL\n", name)
	fmt.Fprintf(out, "   Error: %v\n", err)
}

func checkDBReachable(ctx *cli.Context) error {
	store, ok := ctx.Store.(versioned)
	if !ok {
		// Non-SQL stores only need to answer a listing.
		_, err := ctx.Store.ListHabits()
		return err
	}
	db := store.GetDB()
	if db == nil {
		if err := ctx.Store.Load(); err != nil {
			return fmt.Errorf("failed to load database: %w", err)
		}
		db = store.GetDB()
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(versioned)
	if !ok {
		return nil
	}
	return store.Runner().ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	store, ok := ctx.Store.(versioned)
	if !ok {
		return nil
	}
	runner := store.Runner()
	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return nil
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitual backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	result := validation.New(ctx.Clock()).ValidateHabits(habits)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found:\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
