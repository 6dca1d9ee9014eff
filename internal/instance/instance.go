// Package instance tracks interactive sessions through a lockfile next to
// the database so destructive maintenance can refuse to run underneath them.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrRunning is returned when another live habitual process holds the lock.
var ErrRunning = errors.New("another habitual session is running")

type Lock struct {
	path string
	pid  int
}

func lockPath(dir string) string {
	return filepath.Join(dir, constants.LockFileName)
}

// Acquire writes this process's pid to the lockfile in dir. A lockfile left
// by a dead or unrelated process is taken over.
func Acquire(dir string) (*Lock, error) {
	if pid, running, err := Running(dir); err != nil {
		return nil, err
	} else if running {
		return nil, fmt.Errorf("%w (pid %d)", ErrRunning, pid)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	l := &Lock{path: lockPath(dir), pid: getpidFunc()}
	if err := os.WriteFile(l.path, []byte(strconv.Itoa(l.pid)), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return l, nil
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	pid, err := readPID(l.path)
	if err != nil || pid != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func readPID(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, errors.New("invalid process ID in lockfile")
	}
	return pid, nil
}

// Running reports whether a habitual process other than this one holds
// the lockfile in dir.
func Running(dir string) (int, bool, error) {
	pid, err := readPID(lockPath(dir))
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		// A malformed lockfile cannot name a live session.
		return 0, false, nil
	}
	if pid == getpidFunc() {
		return pid, false, nil
	}

	process, err := findProcessFunc(pid)
	if err != nil {
		return pid, false, fmt.Errorf("failed to inspect process %d: %w", pid, err)
	}
	if process == nil || !strings.HasPrefix(process.Executable(), constants.AppName) {
		return pid, false, nil
	}
	return pid, true, nil
}
