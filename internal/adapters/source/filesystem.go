package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts filesystem reads for testability.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is validated by caller
	return os.ReadFile(path)
}

// MapFSAdapter adapts fstest.MapFS to FileSystem interface for testing.
type MapFSAdapter struct {
	FS   fs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// toRelPath converts an absolute path to a relative path within the
// filesystem. Paths outside the root pass through unchanged, so downstream
// fs operations fail with a clear not-found error.
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return absPath
	}

	if m.Root != "/" && absPath != m.Root && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}

	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return rel
}
