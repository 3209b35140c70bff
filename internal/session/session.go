package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
)

var ErrSessionActive = errors.New("another compass session is already running")

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
	removeFunc      = os.Remove
)

// Lock marks the single interactive session that may mutate the program.
type Lock struct {
	path string
	pid  int
}

// Acquire takes the session lock in dir. The lockfile is created exclusively;
// one left behind by a process that is no longer running is replaced.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := filepath.Join(dir, constants.SessionLockfileName)
	pid := getpidFunc()

	executable := constants.AppName
	if p, err := findProcessFunc(pid); err == nil && p != nil {
		executable = p.Executable()
	}
	content := []byte(fmt.Sprintf("%d|%s", pid, executable))
	lock := &Lock{path: path, pid: pid}

	for replaced := false; ; replaced = true {
		err := createExclusive(path, content)
		if err == nil {
			return lock, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to write session lock: %w", err)
		}

		owner, err := activeOwner(path)
		switch {
		case err == nil && owner == pid:
			if err := os.WriteFile(path, content, 0600); err != nil {
				return nil, fmt.Errorf("failed to write session lock: %w", err)
			}
			return lock, nil
		case err == nil:
			return nil, fmt.Errorf("%w (pid %d)", ErrSessionActive, owner)
		case replaced:
			return nil, fmt.Errorf("%w: lockfile changed while replacing it", ErrSessionActive)
		}

		logger.Debug("Replacing stale session lock", "path", path, "reason", err)
		if err := removeFunc(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale session lock: %w", err)
		}
	}
}

// createExclusive fails with an os.ErrExist error if path is already there.
func createExclusive(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// activeOwner returns the pid recorded in the lockfile if that process is still alive.
func activeOwner(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.New("no lockfile")
	}

	parts := strings.SplitN(strings.TrimSpace(string(content)), "|", 2)
	if len(parts) != 2 {
		return 0, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return 0, errors.New("invalid process ID in lockfile")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, fmt.Errorf("process %d is not running", pid)
	}
	if process.Executable() != parts[1] {
		return 0, fmt.Errorf("pid %d now belongs to %s", pid, process.Executable())
	}
	return pid, nil
}

// Release removes the lockfile if it is still ours.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session lock: %w", err)
	}
	if !strings.HasPrefix(string(content), strconv.Itoa(l.pid)+"|") {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session lock: %w", err)
	}
	return nil
}
