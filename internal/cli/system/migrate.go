package system

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/migration"
)

// versioned is implemented by the SQL-backed stores.
type versioned interface {
	GetDB() *sql.DB
	Runner() *migration.Runner
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(versioned)
	if !ok || store.GetDB() == nil {
		return fmt.Errorf("migrate requires an open SQL database")
	}
	runner := store.Runner()

	pending, err := runner.Pending()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	for _, m := range pending {
		fmt.Fprintf(ctx.Stdout(), "Applying migration %03d_%s\n", m.Version, m.Name)
	}

	count, err := runner.Apply()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if count == 0 {
		fmt.Fprintln(ctx.Stdout(), "No migrations to apply. Database is up to date.")
	} else {
		fmt.Fprintf(ctx.Stdout(), "\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
