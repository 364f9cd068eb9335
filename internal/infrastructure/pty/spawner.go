// Package pty runs shells on pseudo terminals and tracks their working
// directories.
package pty

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/x/xpty"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/logging"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// Spawner starts shells and reports their exits on a single channel.
type Spawner struct {
	ctx   context.Context
	exits chan entity.SessionID
}

// NewSpawner creates a spawner whose exit notifications stop once ctx is
// cancelled. exitBuffer bounds the number of undelivered exits.
func NewSpawner(ctx context.Context, exitBuffer int) *Spawner {
	if exitBuffer < 1 {
		exitBuffer = 1
	}
	return &Spawner{
		ctx:   ctx,
		exits: make(chan entity.SessionID, exitBuffer),
	}
}

// Exits delivers the session ID of every shell that ends on its own.
// Sessions closed through Session.Close are not reported.
func (s *Spawner) Exits() <-chan entity.SessionID {
	return s.exits
}

// Spawn starts a shell in opts.Dir on a new PTY sized opts.Cols x opts.Rows.
func (s *Spawner) Spawn(ctx context.Context, opts port.SpawnOptions) (port.TerminalSession, error) {
	log := logging.FromContext(ctx)

	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}

	shell := DetectShell(opts.Shell)
	cmd := exec.Command(shell)
	cmd.Dir = opts.Dir
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		fmt.Sprintf("VIBETERM_SESSION_ID=%d", opts.SessionID),
	)
	configureCommand(cmd)

	p, err := xpty.NewPty(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	if err := p.Start(cmd); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("start %s: %w", shell, err)
	}
	// Some platforms only honour the size once the child is running.
	if err := p.Resize(cols, rows); err != nil {
		log.Debug().Err(err).Msg("initial pty resize failed")
	}

	sessCtx, cancel := context.WithCancel(s.ctx)
	sess := &Session{
		id:     opts.SessionID,
		pty:    p,
		cmd:    cmd,
		tail:   NewTailBuffer(tailLines),
		cancel: cancel,
	}
	go sess.pump()
	go s.wait(sessCtx, sess)

	log.Info().
		Uint64("session_id", uint64(opts.SessionID)).
		Int("pid", sess.PID()).
		Str("shell", shell).
		Str("dir", opts.Dir).
		Msg("shell started")
	return sess, nil
}

func (s *Spawner) wait(ctx context.Context, sess *Session) {
	_ = xpty.WaitProcess(ctx, sess.cmd)
	if ctx.Err() != nil {
		return
	}
	select {
	case s.exits <- sess.id:
	case <-ctx.Done():
	}
}

var _ port.TerminalSpawner = (*Spawner)(nil)
