package habits

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

var now = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db")).WithClock(func() time.Time { return now })
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.Backup.Auto = false

	var out bytes.Buffer
	return &cli.Context{
		Store:  store,
		Config: &cfg,
		Now:    func() time.Time { return now },
		Out:    &out,
	}, &out
}

func TestHabitAddCmd(t *testing.T) {
	tests := []struct {
		name      string
		habitName string
		frequency string
		wantErr   bool
	}{
		{name: "daily", habitName: "Read", frequency: "daily"},
		{name: "weekly uppercase", habitName: "Long run", frequency: "WEEKLY"},
		{name: "name too short", habitName: "Go", frequency: "daily", wantErr: true},
		{name: "name too long", habitName: strings.Repeat("a", 21), frequency: "daily", wantErr: true},
		{name: "unknown frequency", habitName: "Read", frequency: "monthly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestDB(t)
			err := (&HabitAddCmd{Name: tt.habitName, Frequency: tt.frequency}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			habits, err := ctx.Store.ListHabits()
			if err != nil {
				t.Fatalf("ListHabits failed: %v", err)
			}
			if tt.wantErr {
				if len(habits) != 0 {
					t.Errorf("habit stored despite validation error: %+v", habits)
				}
				return
			}
			if len(habits) != 1 || habits[0].Name != tt.habitName {
				t.Fatalf("habits = %+v, want one named %q", habits, tt.habitName)
			}
			if !strings.Contains(out.String(), "Habit '"+tt.habitName+"' added.") {
				t.Errorf("output = %q", out.String())
			}
		})
	}
}

func TestHabitCompleteCmd(t *testing.T) {
	ctx, out := setupTestDB(t)
	habit, err := ctx.Store.CreateHabit("Stretch", models.FrequencyDaily)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	cmd := &HabitCompleteCmd{ID: habit.ID}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first complete failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second complete failed: %v", err)
	}

	got, err := ctx.Store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(got.Completions) != 1 {
		t.Errorf("len(Completions) = %d, want 1", len(got.Completions))
	}
	if !strings.Contains(out.String(), "Habit 'Stretch' completed.") ||
		!strings.Contains(out.String(), "Habit has already been completed for this period.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHabitCompleteCmdNotFound(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&HabitCompleteCmd{ID: 42}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Habit not found.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHabitDeleteCmd(t *testing.T) {
	ctx, out := setupTestDB(t)
	habit, err := ctx.Store.CreateHabit("Journal", models.FrequencyDaily)
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := ctx.Store.RecordCompletion(habit.ID, now); err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}

	if err := (&HabitDeleteCmd{ID: habit.ID, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("habits after delete = %+v", habits)
	}
	if !strings.Contains(out.String(), "Habit 'Journal' deleted.") {
		t.Errorf("output = %q", out.String())
	}

}

func TestHabitDeleteCmdNotFound(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&HabitDeleteCmd{ID: 42, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Habit not found.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHabitListCmd(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&HabitListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No habits found.") {
		t.Errorf("output for empty store = %q", out.String())
	}

	out.Reset()
	for _, name := range []string{"Read", "Hike"} {
		if _, err := ctx.Store.CreateHabit(name, models.FrequencyWeekly); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}
	}
	if err := (&HabitListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"NAME", "Read", "Hike", "weekly", "2024-05-15"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAutomaticBackupAfterAdd(t *testing.T) {
	ctx, _ := setupTestDB(t)
	ctx.Config.Backup.Auto = true

	if err := (&HabitAddCmd{Name: "Read", Frequency: "daily"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	mgr, ok := ctx.BackupManager()
	if !ok {
		t.Fatal("BackupManager() not available for sqlite store")
	}
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("len(backups) = %d, want 1", len(backups))
	}
}
