package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tick := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
	cfg := config.Default()
	cfg.Backup.Auto = false

	var out bytes.Buffer
	return &cli.Context{
		Store:  store,
		Config: &cfg,
		Now: func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		},
		Out: &out,
	}, store, &out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _, out := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out.String())
	}

	for i := 0; i < 2; i++ {
		if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (2 total)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, store, out := setupTestDB(t)
	if _, err := store.CreateHabit("Read", models.FrequencyDaily); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	name := strings.TrimSpace(strings.TrimPrefix(out.String(), "✓ Backup created: "))

	if _, err := store.CreateHabit("Hike", models.FrequencyWeekly); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Database restored successfully") {
		t.Errorf("output = %q", out.String())
	}

	if err := store.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Read" {
		t.Errorf("habits after restore = %+v, want only Read", habits)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _, _ := setupTestDB(t)
	if err := (&BackupRestoreCmd{BackupFile: "nope.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for a missing backup file")
	}
}
