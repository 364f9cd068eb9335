package input

import (
	"slices"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

// DefaultDragThreshold is the pointer travel, in layout units, after which a
// press on a pane becomes a drag instead of a click.
const DefaultDragThreshold = 8.0

// Options tunes the gesture recognition.
type Options struct {
	DragThreshold  float64
	DividerWidth   float64
	EdgeRatio      float64
	HighlightRatio float64
}

// DefaultOptions returns pixel-based options.
func DefaultOptions() Options {
	return Options{
		DragThreshold:  DefaultDragThreshold,
		DividerWidth:   entity.DefaultDividerWidth,
		EdgeRatio:      entity.DefaultDropEdgeRatio,
		HighlightRatio: entity.DefaultDropHighlightRatio,
	}
}

// Result reports what a frame did to the workspace.
type Result struct {
	// Layout is the geometry to render. It is recomputed only when the
	// tree changed during the frame.
	Layout        entity.ComputedLayout
	LayoutChanged bool
	FocusChanged  bool
	Moved         bool

	// Highlight is the drop preview under the pointer while a pane drag is
	// active.
	Highlight    entity.Rect
	HasHighlight bool
	// Ghost is the dragged pane's rectangle following the pointer.
	Ghost    entity.Rect
	HasGhost bool
}

// Controller holds drag state between frames. Pane drags and divider drags
// never run at the same time. Like the workspace, it is used from the UI
// loop only.
type Controller[T any] struct {
	opts    Options
	move    MoveFunc[T]
	pane    *PaneDrag
	divider *DividerDrag
}

// MoveFunc applies a pane drop to the workspace and reports whether the
// pane moved.
type MoveFunc[T any] func(ws *entity.Workspace[T], source entity.PaneID, zone entity.DropZone) (bool, error)

func moveInPlace[T any](ws *entity.Workspace[T], source entity.PaneID, zone entity.DropZone) (bool, error) {
	if err := ws.MovePane(source, zone); err != nil {
		return false, err
	}
	return true, nil
}

// SetMover replaces how drops are applied. By default the controller calls
// Workspace.MovePane. A nil fn restores the default.
func (c *Controller[T]) SetMover(fn MoveFunc[T]) {
	if fn == nil {
		fn = moveInPlace[T]
	}
	c.move = fn
}

// NewController creates a controller. Zero option fields take defaults.
func NewController[T any](opts Options) *Controller[T] {
	def := DefaultOptions()
	if opts.DragThreshold <= 0 {
		opts.DragThreshold = def.DragThreshold
	}
	if opts.DividerWidth <= 0 {
		opts.DividerWidth = def.DividerWidth
	}
	if opts.EdgeRatio <= 0 {
		opts.EdgeRatio = def.EdgeRatio
	}
	if opts.HighlightRatio <= 0 {
		opts.HighlightRatio = def.HighlightRatio
	}
	return &Controller[T]{opts: opts, move: moveInPlace[T]}
}

// Options returns the effective options.
func (c *Controller[T]) Options() Options {
	return c.opts
}

// PaneDrag returns the current pane gesture, if any.
func (c *Controller[T]) PaneDrag() (PaneDrag, bool) {
	if c.pane == nil {
		return PaneDrag{}, false
	}
	return *c.pane, true
}

// DividerDrag returns the current divider drag, if any.
func (c *Controller[T]) DividerDrag() (DividerDrag, bool) {
	if c.divider == nil {
		return DividerDrag{}, false
	}
	return *c.divider, true
}

// Cancel drops any gesture in progress without touching the workspace.
func (c *Controller[T]) Cancel() {
	c.pane = nil
	c.divider = nil
}

// Update applies one frame of input to ws, the workspace at index in the
// caller's tab list. layout must be the geometry of ws inside bounds as
// rendered by the previous frame.
func (c *Controller[T]) Update(ws *entity.Workspace[T], index int, bounds entity.Rect, layout entity.ComputedLayout, f Frame) Result {
	res := Result{Layout: layout}

	// A gesture never survives a switch to another workspace.
	if c.pane != nil && c.pane.Workspace != index {
		c.pane = nil
	}
	if c.divider != nil && c.divider.Workspace != index {
		c.divider = nil
	}

	if f.Pressed && c.pane == nil && c.divider == nil {
		c.press(index, res.Layout, f.Pointer)
		if c.divider != nil {
			// Ratios follow the pointer from the next frame on.
			if f.Released || !f.Down {
				c.divider = nil
			}
			return res
		}
	}

	if c.divider != nil {
		c.dragDivider(ws, bounds, &res, f)
		return res
	}

	if c.pane != nil {
		c.dragPane(ws, bounds, &res, f)
	}
	return res
}

func (c *Controller[T]) press(index int, layout entity.ComputedLayout, p entity.Point) {
	if d, ok := layout.DividerAt(p); ok {
		c.divider = &DividerDrag{Path: slices.Clone(d.Path), Workspace: index}
		return
	}
	if id, ok := layout.PaneAt(p); ok {
		c.pane = &PaneDrag{Source: id, Start: p, Current: p, Workspace: index}
	}
}

func (c *Controller[T]) dragDivider(ws *entity.Workspace[T], bounds entity.Rect, res *Result, f Frame) {
	if f.Released || !f.Down {
		c.divider = nil
		return
	}
	d, ok := res.Layout.Divider(c.divider.Path)
	if !ok {
		c.divider = nil
		return
	}
	ratio := entity.RatioAt(d.Bounds, d.Dir, f.Pointer, c.opts.DividerWidth)
	changed, err := ws.SetRatioAt(c.divider.Path, ratio)
	if err != nil {
		c.divider = nil
		return
	}
	if changed {
		res.Layout = ws.Layout(bounds, c.opts.DividerWidth)
		res.LayoutChanged = true
	}
}

func (c *Controller[T]) dragPane(ws *entity.Workspace[T], bounds entity.Rect, res *Result, f Frame) {
	drag := c.pane
	drag.Current = f.Pointer
	if !drag.Active && drag.Offset().Len() >= c.opts.DragThreshold {
		drag.Active = true
	}

	if f.Escape {
		c.pane = nil
		return
	}

	if f.Released {
		c.pane = nil
		if !drag.Active {
			c.click(ws, res, f.Pointer)
			return
		}
		c.drop(ws, bounds, res, *drag)
		return
	}

	if !drag.Active {
		return
	}
	zones := entity.ComputeDropZones(res.Layout, drag.Source, c.opts.EdgeRatio, c.opts.HighlightRatio)
	if zone, ok := entity.HitDropZone(zones, drag.Current); ok {
		res.Highlight = zone.Highlight
		res.HasHighlight = true
	}
	if src, ok := res.Layout.Panes[drag.Source]; ok {
		off := drag.Offset()
		res.Ghost = entity.Rect{X: src.X + off.X, Y: src.Y + off.Y, W: src.W, H: src.H}
		res.HasGhost = true
	}
}

func (c *Controller[T]) click(ws *entity.Workspace[T], res *Result, p entity.Point) {
	id, ok := res.Layout.PaneAt(p)
	if !ok || id == ws.FocusedPaneID {
		return
	}
	if err := ws.Focus(id); err == nil {
		res.FocusChanged = true
	}
}

func (c *Controller[T]) drop(ws *entity.Workspace[T], bounds entity.Rect, res *Result, drag PaneDrag) {
	zones := entity.ComputeDropZones(res.Layout, drag.Source, c.opts.EdgeRatio, c.opts.HighlightRatio)
	zone, ok := entity.HitDropZone(zones, drag.Current)
	if !ok {
		return
	}
	// A lone pane cannot be moved; the drop is ignored.
	moved, err := c.move(ws, drag.Source, zone.Zone)
	if err != nil || !moved {
		return
	}
	res.Moved = true
	res.FocusChanged = true
	res.LayoutChanged = true
	res.Layout = ws.Layout(bounds, c.opts.DividerWidth)
}
