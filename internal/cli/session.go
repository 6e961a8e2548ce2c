package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/phrazzld/workstream/internal/config"
	"github.com/phrazzld/workstream/internal/platform/logger"
	"github.com/phrazzld/workstream/internal/service"
	"github.com/phrazzld/workstream/internal/store"
)

// session wires one command invocation: configuration, logging, an empty
// store seeded from the snapshot file when one exists, and the task
// service on top.
type session struct {
	cfg    *config.Config
	svc    *service.TaskService
	path   string
	logger *slog.Logger
}

// openSession loads configuration, sets up logging, and builds the task
// service. If the snapshot file exists its rows are imported; rejected
// rows are logged and skipped.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	thresholds := cfg.Thresholds()
	if longRunningDays > 0 {
		thresholds.LongRunningDays = longRunningDays
	}
	if inactivityDays > 0 {
		thresholds.InactivityDays = inactivityDays
	}

	path := snapshotPath
	if path == "" {
		path = cfg.Snapshot.Path
	}

	svc := service.NewTaskService(store.New(), thresholds, time.Now, log)

	sess := &session{cfg: cfg, svc: svc, path: path, logger: log}
	if err := sess.load(); err != nil {
		return nil, err
	}
	return sess, nil
}

// load seeds the store from the snapshot file, if one exists.
func (s *session) load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open snapshot %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	if _, _, err := s.svc.Import(f); err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", s.path, err)
	}
	return nil
}

// save writes the current store back to the snapshot file. The write goes
// through a temp file in the same directory and a rename, so a failure
// mid-write never truncates the previous snapshot.
func (s *session) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "tasks-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if err := s.svc.Export(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot %s: %w", s.path, err)
	}
	return nil
}
