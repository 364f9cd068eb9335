package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	ctx := WithContext(context.Background(), NewWithWriter(cfg, &buf))
	ctx = WithComponent(ctx, "layout")
	ctx = WithTabID(ctx, "tab-1")
	ctx = WithSessionID(ctx, 7)

	FromContext(ctx).Debug().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"layout"`)
	assert.Contains(t, out, `"tab_id":"tab-1"`)
	assert.Contains(t, out, `"session_id":7`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContextWithoutLoggerIsDisabled(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestRotatingFile_RotatesAndKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vibeterm.log")

	f, err := NewRotatingFile(path, 1, 2)
	require.NoError(t, err)
	f.maxSize = 16

	for _, line := range []string{"aaaaaaaaaa\n", "bbbbbbbbbb\n", "cccccccccc\n", "dddddddddd\n"} {
		_, err := f.Write([]byte(line))
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dddddddddd\n", string(current))

	first, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "cccc"))

	_, err = os.Stat(path + ".2")
	require.NoError(t, err)
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err))
}

func TestNewWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "logs", "vibeterm.log")
	cfg.Format = "json"

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Str("k", "v").Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestLogPanicLogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	logger := NewWithWriter(cfg, &buf)

	assert.PanicsWithValue(t, "boom", func() {
		defer LogPanic(&logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"stack":`)

	buf.Reset()
	assert.NotPanics(t, func() {
		defer LogPanic(&logger)
	})
	assert.Empty(t, buf.String())
}

func TestStartupTrace(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel
	logger := NewWithWriter(cfg, &buf)

	trace := NewStartupTrace(&logger)
	require.True(t, trace.Enabled())
	trace.Mark("config_loaded")
	trace.Mark("first_shell")
	trace.Finish()
	trace.Mark("late")

	out := buf.String()
	assert.Contains(t, out, `"milestone":"config_loaded"`)
	assert.Contains(t, out, `"milestone":"first_shell"`)
	assert.Contains(t, out, "start complete")
	assert.NotContains(t, out, "late")

	quiet := NewWithWriter(DefaultConfig(), &buf)
	assert.False(t, NewStartupTrace(&quiet).Enabled())
	var nilTrace *StartupTrace
	assert.NotPanics(t, func() { nilTrace.Mark("x") })
}

func TestRunID(t *testing.T) {
	id := GenerateRunID()
	assert.Len(t, id, len("20251217_205106_a7b3"))
}
