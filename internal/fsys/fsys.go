// Package fsys provides the primitive filesystem operations used by the
// installer and state store. It carries no business logic; the single
// interface exists so failure paths can be exercised in tests.
package fsys

import (
	"os"
	"path/filepath"
)

// FS is the narrow filesystem surface the rest of notekit writes through.
type FS interface {
	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error
	// WriteFile writes data to path, replacing any existing content.
	WriteFile(path string, data []byte) error
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)
	// Exists reports whether path exists (file or directory).
	Exists(path string) bool
	// RemoveAll removes path and everything beneath it.
	RemoveAll(path string) error
}

type osFS struct{}

// OS returns the real filesystem implementation.
func OS() FS {
	return osFS{}
}

func (osFS) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func (osFS) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
