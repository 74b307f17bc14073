package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lazypower/octavia/internal/pet"
)

var (
	// ErrNotFound means the state file does not exist yet.
	ErrNotFound = errors.New("state file not found")
	// ErrFormat means the state file exists but does not hold a valid record.
	ErrFormat = errors.New("invalid state file")
	// ErrWrite means the state could not be persisted. The previous file
	// content is left in place.
	ErrWrite = errors.New("write state file")
)

// TimestampLayout is the ISO-8601 layout written to last_updated.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Swapped out in tests to simulate failures.
var (
	createTemp = os.CreateTemp
	renameFile = os.Rename
)

// StateFile persists the single pet record as an indented JSON document.
type StateFile struct {
	Path     string
	Location *time.Location

	now func() time.Time
}

// DefaultStatePath returns the default state file location: data/state.json
func DefaultStatePath() string {
	return filepath.Join("data", "state.json")
}

// NewStateFile returns a store for the record at path. Timestamps are written
// in loc, or UTC when loc is nil.
func NewStateFile(path string, loc *time.Location) *StateFile {
	if loc == nil {
		loc = time.UTC
	}
	return &StateFile{Path: path, Location: loc, now: time.Now}
}

// tempPattern names the per-save temp files created next to the state file.
func (f *StateFile) tempPattern() string {
	return filepath.Base(f.Path) + ".*.tmp"
}

// Load reads and validates the record.
func (f *StateFile) Load() (pet.State, error) {
	var s pet.State

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", f.Path, err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return pet.State{}, fmt.Errorf("%w: %s: %v", ErrFormat, f.Path, err)
	}
	if s.Name == "" {
		return pet.State{}, fmt.Errorf("%w: %s: missing name", ErrFormat, f.Path)
	}
	if !s.InRange() {
		return pet.State{}, fmt.Errorf("%w: %s: stats out of range (health=%d hunger=%d mood=%d), repair the file by hand",
			ErrFormat, f.Path, s.Health, s.Hunger, s.Mood)
	}
	return s, nil
}

// Save stamps s.LastUpdated and replaces the state file. The record is
// written to a uniquely named sibling temp file first and renamed into place,
// so readers never see a partial document. Concurrent savers are not
// excluded; the last rename wins.
func (f *StateFile) Save(s *pet.State) error {
	now := time.Now
	if f.now != nil {
		now = f.now
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	s.LastUpdated = now().In(loc).Format(TimestampLayout)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("%w: create state dir: %v", ErrWrite, err)
	}

	fh, err := createTemp(filepath.Dir(f.Path), f.tempPattern())
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	tmp := fh.Name()
	if err := writeSynced(fh, buf.Bytes()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := renameFile(tmp, f.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", ErrWrite, f.Path, err)
	}
	return nil
}

// writeSynced writes data to fh, flushes it to disk and closes it.
func writeSynced(fh *os.File, data []byte) error {
	if err := fh.Chmod(0644); err != nil {
		fh.Close()
		return err
	}
	if _, err := fh.Write(data); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Sync(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// GetOrInit loads the record, creating and persisting the default pet when
// no state file exists yet. Format errors are returned as-is.
func (f *StateFile) GetOrInit() (pet.State, error) {
	s, err := f.Load()
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return pet.State{}, err
	}

	s = pet.Default()
	if err := f.Save(&s); err != nil {
		return pet.State{}, err
	}
	slog.Info("created initial state file", "path", f.Path)
	return s, nil
}
