package pty

import (
	"errors"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_PollRespectsInterval(t *testing.T) {
	calls := 0
	dirs := []string{"/a", "/a", "/b"}
	tr := newTracker(func() (string, error) {
		d := dirs[calls]
		calls++
		return d, nil
	})
	tr.SetInterval(time.Second)
	start := time.Unix(1000, 0)

	dir, ok := tr.Poll(start)
	require.True(t, ok)
	assert.Equal(t, "/a", dir)

	_, ok = tr.Poll(start.Add(500 * time.Millisecond))
	assert.False(t, ok)
	assert.Equal(t, 1, calls)

	// Same directory is not reported twice.
	_, ok = tr.Poll(start.Add(time.Second))
	assert.False(t, ok)
	assert.Equal(t, 2, calls)

	dir, ok = tr.Poll(start.Add(2 * time.Second))
	require.True(t, ok)
	assert.Equal(t, "/b", dir)
}

func TestTracker_ErrorsAreNotChanges(t *testing.T) {
	tr := newTracker(func() (string, error) { return "", errors.New("gone") })
	_, ok := tr.Poll(time.Now())
	assert.False(t, ok)
}

func TestNewTracker_CurrentProcess(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cwd lookup is exercised on linux only")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)

	tr, err := NewTracker(os.Getpid())
	require.NoError(t, err)

	dir, ok := tr.Poll(time.Now())
	require.True(t, ok)
	assert.Equal(t, wd, dir)
}
