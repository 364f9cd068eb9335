// Package usecase implements the workspace operations on top of the domain
// layout tree and the terminal session ports.
package usecase

import "errors"

var (
	// ErrLastTab is returned when closing the only remaining tab.
	ErrLastTab = errors.New("cannot close the last tab")
	// ErrTabNotFound is returned when a tab ID is not in the tab list.
	ErrTabNotFound = errors.New("tab not found")
	// ErrSessionNotFound is returned for unknown terminal sessions.
	ErrSessionNotFound = errors.New("session not found")
)
