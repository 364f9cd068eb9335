// Package filesystem implements the file system ports on top of afero so
// tests can run against an in-memory file system.
package filesystem

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/vibeterm/internal/application/port"
)

// ProjectMarkers are the entries whose presence marks a project root.
var ProjectMarkers = []string{".git", "go.mod", "Cargo.toml", "package.json", "pyproject.toml", ".svn"}

// Adapter implements port.FileSystem and port.ProjectRootDetector.
type Adapter struct {
	fs afero.Fs
}

// New creates a new filesystem adapter over the OS file system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an adapter over fs.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	return afero.IsDir(a.fs, path)
}

func (a *Adapter) ReadFile(_ context.Context, path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// DetectProjectRoot walks from dir towards the file system root and returns
// the first directory holding one of ProjectMarkers.
func (a *Adapter) DetectProjectRoot(ctx context.Context, dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	dir = filepath.Clean(dir)
	for {
		if ctx.Err() != nil {
			return "", false
		}
		for _, marker := range ProjectMarkers {
			if ok, err := afero.Exists(a.fs, filepath.Join(dir, marker)); err == nil && ok {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

var (
	_ port.FileSystem          = (*Adapter)(nil)
	_ port.ProjectRootDetector = (*Adapter)(nil)
)
