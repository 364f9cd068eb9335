// Package input turns per-frame pointer snapshots into pane focus changes,
// pane moves and divider drags on a workspace.
package input

import "github.com/bnema/vibeterm/internal/domain/entity"

// Frame is the pointer and key state sampled once per frame. It is built by
// the frontend from whatever events its toolkit delivers.
type Frame struct {
	Pointer  entity.Point
	Pressed  bool // primary button went down during this frame
	Down     bool // primary button is held
	Released bool // primary button went up during this frame
	Escape   bool
}

// PaneDrag is an armed or active pane repositioning gesture.
type PaneDrag struct {
	Source    entity.PaneID
	Start     entity.Point
	Current   entity.Point
	Active    bool // pointer travelled past the threshold
	Workspace int
}

// Offset returns how far the pointer moved since the press.
func (d PaneDrag) Offset() entity.Point {
	return d.Current.Sub(d.Start)
}

// DividerDrag is an in-progress divider resize.
type DividerDrag struct {
	Path      []bool
	Workspace int
}
