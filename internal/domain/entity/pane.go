// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"path/filepath"
)

// PaneID uniquely identifies a pane within a workspace.
// IDs are handed out monotonically and never reused after a pane closes.
type PaneID uint64

func (id PaneID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// SessionID identifies a terminal session backing a pane.
type SessionID uint64

// SplitDirection indicates how a split node divides its space.
type SplitDirection int

const (
	SplitNone       SplitDirection = iota // Leaf node
	SplitHorizontal                       // Left | Right split
	SplitVertical                         // Top / Bottom split
)

func (d SplitDirection) String() string {
	switch d {
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return "none"
	}
}

// PaneKind indicates what a pane displays.
type PaneKind int

const (
	PaneTerminal   PaneKind = iota // Shell session
	PaneFileViewer                 // Read-only file contents
)

// Pane is the content value stored in a layout leaf.
// The layout core never inspects it beyond SessionID lookups.
type Pane struct {
	Kind PaneKind

	// Terminal fields
	SessionID   SessionID
	CurrentDir  string // tracked for sidebar root switching
	ProjectRoot string // empty when no marker was found

	// File viewer fields
	FilePath     string
	FileText     string
	ScrollOffset float64
}

// NewTerminalPane creates terminal content for the given session.
func NewTerminalPane(sessionID SessionID, dir string) *Pane {
	return &Pane{
		Kind:       PaneTerminal,
		SessionID:  sessionID,
		CurrentDir: dir,
	}
}

// NewFilePane creates file viewer content.
func NewFilePane(path, text string) *Pane {
	return &Pane{
		Kind:     PaneFileViewer,
		FilePath: path,
		FileText: text,
	}
}

// IsTerminal reports whether the pane hosts a terminal session.
func (p *Pane) IsTerminal() bool {
	return p != nil && p.Kind == PaneTerminal
}

// Title returns a short display title for the pane.
func (p *Pane) Title() string {
	if p == nil {
		return ""
	}
	switch p.Kind {
	case PaneFileViewer:
		if p.FilePath == "" {
			return "File"
		}
		return filepath.Base(p.FilePath)
	default:
		if p.CurrentDir == "" {
			return fmt.Sprintf("shell #%d", p.SessionID)
		}
		return fmt.Sprintf("shell #%d %s", p.SessionID, filepath.Base(p.CurrentDir))
	}
}

// HasSession returns a matcher for Workspace.FindPane that selects the
// terminal pane backed by the given session.
func HasSession(id SessionID) func(*Pane) bool {
	return func(p *Pane) bool {
		return p.IsTerminal() && p.SessionID == id
	}
}
