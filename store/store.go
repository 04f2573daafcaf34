package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// ErrCorrupt is returned when the preferences file exists but cannot be decoded
var ErrCorrupt = errors.New("corrupt preferences file")

// Record is the persisted host state
type Record struct {
	HighScore int  `toml:"high_score"`
	Mobile    bool `toml:"mobile"`
}

// Store persists the high score and mobile preference in a TOML file
// Safe for concurrent use
type Store struct {
	mu   sync.Mutex
	path string
	rec  Record
}

// DefaultPath returns the per-user preferences location, or a file in the working directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".gravity-shift.toml"
	}
	return filepath.Join(dir, "gravity-shift", "prefs.toml")
}

// Open loads path; a missing file yields an empty record
// A corrupt file also yields a usable empty store, along with an error wrapping ErrCorrupt
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}

	var rec Record
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if rec.HighScore < 0 {
		rec.HighScore = 0
	}
	s.rec = rec
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.HighScore
}

// RecordScore raises the high score to score if higher and saves; reports whether it changed
func (s *Store) RecordScore(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.rec.HighScore {
		return false, nil
	}
	s.rec.HighScore = score
	return true, s.saveLocked()
}

func (s *Store) Mobile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Mobile
}

// SetMobile stores the mobile preference
func (s *Store) SetMobile(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec.Mobile == on {
		return nil
	}
	s.rec.Mobile = on
	return s.saveLocked()
}

// saveLocked writes through a temp file so a crash never leaves a truncated record
func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.rec); err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}
