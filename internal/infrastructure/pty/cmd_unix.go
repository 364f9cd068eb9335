//go:build !windows

package pty

import (
	"os/exec"
	"syscall"
)

// configureCommand makes the PTY the controlling terminal of a new session.
func configureCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0, // stdin, which xpty wires to the PTY slave
	}
}
