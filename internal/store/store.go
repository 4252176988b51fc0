package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/askewbot/askew-trainer/internal/intents"
)

// ErrParse indicates the dataset file exists but is not well-formed JSON.
var ErrParse = errors.New("dataset file is not valid JSON")

// BackupTimeFormat names backups by UTC capture time to second precision.
const BackupTimeFormat = "20060102T150405Z"

// Store loads and persists the intents dataset on disk.
type Store struct {
	path      string
	backupDir string
	now       func() time.Time

	// initialized is set when Load created the primary file, which then
	// holds no prior version worth backing up.
	initialized bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to name backups.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store for the dataset at path, writing backups to backupDir.
func New(path, backupDir string, opts ...Option) *Store {
	s := &Store{path: path, backupDir: backupDir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the primary dataset path.
func (s *Store) Path() string { return s.path }

// SaveResult reports where a save wrote. BackupPath is empty when there was
// no prior file to back up.
type SaveResult struct {
	Path       string
	BackupPath string
}

// Load reads the dataset. A missing file is created holding an empty dataset.
func (s *Store) Load() (*intents.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		ds := intents.NewDataset()
		if err := s.writePrimary(ds); err != nil {
			return nil, err
		}
		s.initialized = true
		return ds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds intents.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}
	ds.Normalize()
	return &ds, nil
}

// Save backs up the current primary file, if any, then overwrites it with ds.
// The backup is complete before the primary file is touched. A file that this
// Store created in Load is not backed up.
func (s *Store) Save(ds *intents.Dataset) (SaveResult, error) {
	res := SaveResult{Path: s.path}

	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return res, fmt.Errorf("creating backup directory: %w", err)
	}

	prior, err := os.ReadFile(s.path)
	switch {
	case err == nil && s.initialized:
	case err == nil:
		name := fmt.Sprintf("intents_%s.json", s.now().UTC().Format(BackupTimeFormat))
		backup := filepath.Join(s.backupDir, name)
		if err := os.WriteFile(backup, prior, 0644); err != nil {
			return res, fmt.Errorf("writing backup: %w", err)
		}
		res.BackupPath = backup
	case errors.Is(err, fs.ErrNotExist):
	default:
		return res, fmt.Errorf("reading dataset for backup: %w", err)
	}

	if err := s.writePrimary(ds); err != nil {
		return res, err
	}
	s.initialized = false
	return res, nil
}

// writePrimary replaces the primary file via a temp file and rename.
func (s *Store) writePrimary(ds *intents.Dataset) error {
	data, err := intents.Marshal(ds)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".intents-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing dataset: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting dataset permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing dataset: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing dataset: %w", err)
	}
	return nil
}
