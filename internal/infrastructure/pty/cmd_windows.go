//go:build windows

package pty

import "os/exec"

// configureCommand is a no-op: ConPTY sets up the console itself.
func configureCommand(*exec.Cmd) {}
