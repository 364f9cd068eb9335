package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DevModeUsesWorkingDirectory(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)
	want := filepath.Join(cwd, ".dev", "vibeterm")

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, want, configDir)

	stateDir, err := adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, want, stateDir)

	logFile, err := adapter.LogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(want, "logs", "vibeterm.log"), logFile)
}

func TestAdapter_PathsEndInAppName(t *testing.T) {
	t.Setenv("ENV", "")
	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "vibeterm", filepath.Base(configDir))

	stateDir, err := adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, "vibeterm", filepath.Base(stateDir))
}
