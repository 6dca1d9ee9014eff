package instance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubProcesses(t *testing.T, self int, find func(pid int) (ps.Process, error)) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc = oldFind
		getpidFunc = oldPid
	})
	findProcessFunc = find
	getpidFunc = func() int { return self }
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	stubProcesses(t, 100, func(pid int) (ps.Process, error) { return nil, nil })

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "habitual.lock"))
	if err != nil || string(content) != "100" {
		t.Fatalf("lockfile = %q, %v; want pid 100", content, err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "habitual.lock")); !os.IsNotExist(err) {
		t.Error("lockfile still present after Release()")
	}
}

func TestRunning(t *testing.T) {
	tests := []struct {
		name        string
		lockfile    string
		find        func(pid int) (ps.Process, error)
		wantRunning bool
		wantErr     bool
	}{
		{
			name:     "no lockfile",
			find:     func(pid int) (ps.Process, error) { return nil, nil },
			lockfile: "",
		},
		{
			name:     "malformed lockfile",
			lockfile: "not-a-pid",
			find:     func(pid int) (ps.Process, error) { return nil, nil },
		},
		{
			name:     "stale pid",
			lockfile: "4242",
			find:     func(pid int) (ps.Process, error) { return nil, nil },
		},
		{
			name:     "pid reused by other program",
			lockfile: "4242",
			find:     func(pid int) (ps.Process, error) { return &mockProcess{pid: pid, executable: "bash"}, nil },
		},
		{
			name:        "live habitual process",
			lockfile:    "4242",
			find:        func(pid int) (ps.Process, error) { return &mockProcess{pid: pid, executable: "habitual"}, nil },
			wantRunning: true,
		},
		{
			name:     "own pid",
			lockfile: "100",
			find:     func(pid int) (ps.Process, error) { return &mockProcess{pid: pid, executable: "habitual"}, nil },
		},
		{
			name:     "process table error",
			lockfile: "4242",
			find:     func(pid int) (ps.Process, error) { return nil, errors.New("boom") },
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			stubProcesses(t, 100, tt.find)
			if tt.lockfile != "" {
				if err := os.WriteFile(filepath.Join(dir, "habitual.lock"), []byte(tt.lockfile), 0600); err != nil {
					t.Fatal(err)
				}
			}

			_, running, err := Running(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Running() error = %v, wantErr %v", err, tt.wantErr)
			}
			if running != tt.wantRunning {
				t.Errorf("Running() = %v, want %v", running, tt.wantRunning)
			}
		})
	}
}

func TestAcquireRefusesLiveSession(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "habitual.lock"), []byte("4242"), 0600); err != nil {
		t.Fatal(err)
	}
	stubProcesses(t, 100, func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "habitual"}, nil
	})

	if _, err := Acquire(dir); !errors.Is(err, ErrRunning) {
		t.Errorf("Acquire() error = %v, want ErrRunning", err)
	}
}

func TestReleaseLeavesForeignLock(t *testing.T) {
	dir := t.TempDir()
	stubProcesses(t, 100, func(pid int) (ps.Process, error) { return nil, nil })

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() failed: %v", err)
	}
	// Another session took over the stale lock.
	if err := os.WriteFile(filepath.Join(dir, "habitual.lock"), []byte("200"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "habitual.lock")); err != nil {
		t.Error("Release() removed a lockfile owned by another session")
	}
}
