// Package state persists the installation record: a single pretty-printed
// JSON document tracking whether notekit's commands are installed, at what
// catalog version, and which files belong to the installation.
package state

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/raveheart1/notekit/internal/fsys"
)

// FileName is the state record's filename inside the installation root.
const FileName = "notekit.json"

// Source records where an installed command came from.
type Source string

const (
	SourcePredefined Source = "predefined"
	SourceUser       Source = "user"
	SourceProject    Source = "project"
)

// CommandRecord describes one successfully installed command file.
type CommandRecord struct {
	Name        string    `json:"name"`
	InstalledAt time.Time `json:"installedAt"`
	Version     string    `json:"version"`
	Source      Source    `json:"source"`
}

// Installation is the persisted installation state. It is valid only when
// Initialized is true and Commands is non-empty; every other shape is
// treated as corrupted and repaired by reinstalling.
type Installation struct {
	Initialized bool            `json:"initialized"`
	Version     string          `json:"version,omitempty"`
	InstalledAt *time.Time      `json:"installedAt,omitempty"`
	Commands    []CommandRecord `json:"commands"`
}

// IsValid reports whether the record satisfies the validity invariant.
// A nil receiver (absent state) is not valid.
func (s *Installation) IsValid() bool {
	return s != nil && s.Initialized && len(s.Commands) > 0
}

// CommandNames returns the recorded command names in installation order.
func (s *Installation) CommandNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		names[i] = c.Name
	}
	return names
}

// Store loads and saves the installation record at a fixed path.
type Store struct {
	fs   fsys.FS
	path string
}

// NewStore returns a store bound to path.
func NewStore(fs fsys.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the state file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state record. Absence is a normal outcome, not an error:
// a missing file, unreadable file, or malformed document all return nil.
// Shape problems beyond parsing (initialized without commands) are left to
// IsValid so the caller can distinguish corrupted from absent.
func (s *Store) Load() *Installation {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var st Installation
	if err := json.Unmarshal(data, &st); err != nil {
		return nil
	}
	return &st
}

// Save persists the record, creating the containing directory if needed and
// overwriting any prior content. Unlike Load, failures propagate: an
// unwritable state file means the installation cannot be recorded.
func (s *Store) Save(st *Installation) error {
	if err := s.fs.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return s.fs.WriteFile(s.path, append(data, '\n'))
}
