package filesystem

import (
	"context"

	"github.com/bnema/vibeterm/internal/application/port"
)

// RootLookup is a cached project root detection result.
type RootLookup struct {
	Root  string
	Found bool
}

// CachedRootDetector memoizes project root detection per directory.
type CachedRootDetector struct {
	inner port.ProjectRootDetector
	cache port.Cache[string, RootLookup]
}

// NewCachedRootDetector wraps inner with cache.
func NewCachedRootDetector(inner port.ProjectRootDetector, cache port.Cache[string, RootLookup]) *CachedRootDetector {
	return &CachedRootDetector{inner: inner, cache: cache}
}

func (d *CachedRootDetector) DetectProjectRoot(ctx context.Context, dir string) (string, bool) {
	if hit, ok := d.cache.Get(dir); ok {
		return hit.Root, hit.Found
	}
	root, found := d.inner.DetectProjectRoot(ctx, dir)
	if ctx.Err() == nil {
		d.cache.Set(dir, RootLookup{Root: root, Found: found})
	}
	return root, found
}

var _ port.ProjectRootDetector = (*CachedRootDetector)(nil)
