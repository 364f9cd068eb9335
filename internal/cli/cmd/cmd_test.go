package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vibeterm/internal/application/usecase"
	"github.com/bnema/vibeterm/internal/cli/styles"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestWriteLayoutReport(t *testing.T) {
	out, err := usecase.NewRunLayoutScriptUseCase().Execute(context.Background(), usecase.RunLayoutScriptInput{
		Script:       strings.NewReader("split h editor\nclose\nclose\n"),
		Width:        100,
		Height:       40,
		DividerWidth: 2,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeLayoutReport(&buf, out, testTheme())
	report := buf.String()

	assert.Contains(t, report, "line 3: close: cannot remove the last pane")
	assert.Contains(t, report, "line 3 [0]")
	assert.Contains(t, report, "* [0] pane 0 x=0 y=0 w=100 h=40")
}

func TestWriteLayoutReport_MarksFocus(t *testing.T) {
	out, err := usecase.NewRunLayoutScriptUseCase().Execute(context.Background(), usecase.RunLayoutScriptInput{
		Script:       strings.NewReader("split h editor\n"),
		Width:        102,
		Height:       40,
		DividerWidth: 2,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeLayoutReport(&buf, out, testTheme())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "line 1 H(0.50 [0] [1])", lines[0])
	assert.Equal(t, "  [0] pane 0 x=0 y=0 w=50 h=40", lines[1])
	assert.Equal(t, "* [1] editor x=52 y=0 w=50 h=40", lines[2])
}

func TestLastLines(t *testing.T) {
	lines, err := lastLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestColorizeLogLine(t *testing.T) {
	theme := testTheme()

	json := `{"level":"warn","time":"2026-01-02T15:04:05Z","component":"tui","message":"cannot open file"}`
	assert.Equal(t, "15:04:05 WRN tui: cannot open file", colorizeLogLine(json, theme))

	console := "15:04:05 INF terminal started dir=/tmp"
	assert.Equal(t, console, colorizeLogLine(console, theme))
	assert.Equal(t, "x", colorizeLogLine("x", theme))
}

func TestFollowLog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*followPoll)
	defer cancel()

	var buf bytes.Buffer
	start := time.Now()
	err := followLog(ctx, strings.NewReader("first\nsecond\npartial"), &buf, testTheme())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", buf.String())
	assert.GreaterOrEqual(t, time.Since(start), 2*followPoll)
}
