package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.ConfigPath())
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
[layout]
divider_width = 2
drag_threshold = 3.5

[terminal]
shell = "  /bin/zsh "

[logging]
format = "JSON"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	t.Setenv("VIBETERM_TERMINAL_EXIT_BUFFER", "8")
	t.Setenv("VIBETERM_LOG_LEVEL", "debug")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 2, cfg.Layout.DividerWidth)
	assert.InDelta(t, 3.5, cfg.Layout.DragThreshold, 1e-9)
	assert.InDelta(t, 0.25, cfg.Layout.DropZoneEdgeRatio, 1e-9)
	assert.Equal(t, "/bin/zsh", cfg.Terminal.Shell)
	assert.Equal(t, 8, cfg.Terminal.ExitBuffer)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 500*time.Millisecond, cfg.Terminal.FocusedPollInterval())
	assert.Equal(t, 3*time.Second, cfg.Terminal.BackgroundPollInterval())
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := "[layout]\ndivider_width = 9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.divider_width")
}

func TestManager_LoadRejectsBrokenTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[layout\n"), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var width atomic.Int64
	mgr.OnConfigChange(func(cfg *Config) {
		width.Store(int64(cfg.Layout.DividerWidth))
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	cfg := DefaultConfig()
	cfg.Layout.DividerWidth = 3
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(dir, "config.toml")))

	require.Eventually(t, func() bool {
		return width.Load() == 3
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 3, mgr.Get().Layout.DividerWidth)
}
