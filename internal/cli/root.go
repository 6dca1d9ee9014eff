package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Now is the reference clock for every completion and streak.
	Now func() time.Time
	In  io.Reader
	Out io.Writer
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Clock() func() time.Time {
	if c.Now == nil {
		return time.Now
	}
	return c.Now
}

func (c *Context) maxBackups() int {
	if c.Config == nil {
		return 0
	}
	return c.Config.Backup.MaxBackups
}

// BackupManager returns a backup manager for the SQLite database, or false
// when the store is not file backed.
func (c *Context) BackupManager() (*backup.Manager, bool) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, false
	}
	return backup.NewManager(c.Store.GetConfigPath(), c.maxBackups()).WithClock(c.Clock()), true
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Config != nil && !c.Config.Backup.Auto {
		return
	}
	mgr, ok := c.BackupManager()
	if !ok {
		return
	}
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// LockDir is where interactive sessions leave their lockfile: next to the
// SQLite database, or in the config directory for Postgres.
func (c *Context) LockDir() string {
	if _, ok := c.Store.(*sqlite.Store); ok {
		return filepath.Dir(c.Store.GetConfigPath())
	}
	dir, err := config.ExpandPath(constants.DefaultConfigDir)
	if err != nil {
		return constants.DefaultConfigDir
	}
	return dir
}
