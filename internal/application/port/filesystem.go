package port

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// ProjectRootDetector finds the nearest directory at or above dir holding
// a project marker (.git, go.mod, ...). ok is false when none was found.
type ProjectRootDetector interface {
	DetectProjectRoot(ctx context.Context, dir string) (root string, ok bool)
}
