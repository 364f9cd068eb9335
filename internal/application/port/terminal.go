// Package port defines the interfaces the use cases depend on.
package port

//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks

import (
	"context"
	"time"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

// SpawnOptions describes a new terminal session.
type SpawnOptions struct {
	SessionID entity.SessionID
	Dir       string // working directory; empty uses the process cwd
	Shell     string // empty uses $SHELL, then /bin/sh
	Cols      int
	Rows      int
}

// TerminalSpawner starts shell sessions. Implementations report session
// exits on a channel that the UI loop drains between frames.
type TerminalSpawner interface {
	Spawn(ctx context.Context, opts SpawnOptions) (TerminalSession, error)
}

// TerminalSession is a running shell attached to a pseudo terminal.
type TerminalSession interface {
	ID() entity.SessionID
	PID() int
	Resize(cols, rows int) error
	// Write sends input to the shell.
	Write(p []byte) (int, error)
	// Tail returns up to n of the most recent output lines, ANSI stripped.
	Tail(n int) []string
	Close() error
}

// CwdTracker reports the working directory of a shell process. Poll is
// rate limited by the tracker's interval and returns ok only when a new
// directory was observed.
type CwdTracker interface {
	Poll(now time.Time) (dir string, ok bool)
	SetInterval(d time.Duration)
}

// CwdTrackerFactory creates a tracker for a shell PID.
type CwdTrackerFactory func(pid int) (CwdTracker, error)
