package pty

import (
	"context"
	"io"
	"os/exec"
	"sync"

	"github.com/charmbracelet/x/xpty"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/domain/entity"
)

const tailLines = 500

// Session is a shell running on a pseudo terminal.
type Session struct {
	id     entity.SessionID
	pty    xpty.Pty
	cmd    *exec.Cmd
	tail   *TailBuffer
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

func (s *Session) ID() entity.SessionID { return s.id }

func (s *Session) PID() int {
	if s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

func (s *Session) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	return s.pty.Resize(cols, rows)
}

func (s *Session) Write(p []byte) (int, error) {
	return s.pty.Write(p)
}

func (s *Session) Tail(n int) []string {
	return s.tail.Tail(n)
}

// Close kills the shell and releases the PTY. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		s.closeErr = s.pty.Close()
	})
	return s.closeErr
}

// pump copies shell output into the tail buffer until the PTY closes.
func (s *Session) pump() {
	// Reading ends with EIO on Linux once the shell exits; nothing to report.
	_, _ = io.Copy(s.tail, s.pty)
}

var _ port.TerminalSession = (*Session)(nil)
