package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

var viewport = entity.Rect{W: 1000, H: 600}

type fixture struct {
	t      *testing.T
	ws     *entity.Workspace[*entity.Pane]
	ctrl   *Controller[*entity.Pane]
	layout entity.ComputedLayout
	panes  map[entity.PaneID]*entity.Pane
}

// newFixture builds H(0, V(1, 2)) with focus on pane 2.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	panes := map[entity.PaneID]*entity.Pane{
		0: entity.NewTerminalPane(10, "/a"),
		1: entity.NewTerminalPane(11, "/b"),
		2: entity.NewTerminalPane(12, "/c"),
	}
	ws := entity.NewWorkspace(entity.WorkspaceID("ws"), "test", panes[0])
	_, err := ws.SplitFocused(entity.SplitHorizontal, panes[1])
	require.NoError(t, err)
	_, err = ws.SplitFocused(entity.SplitVertical, panes[2])
	require.NoError(t, err)

	ctrl := NewController[*entity.Pane](DefaultOptions())
	return &fixture{
		t:      t,
		ws:     ws,
		ctrl:   ctrl,
		layout: ws.Layout(viewport, ctrl.Options().DividerWidth),
		panes:  panes,
	}
}

func (f *fixture) frame(fr Frame) Result {
	res := f.ctrl.Update(f.ws, 0, viewport, f.layout, fr)
	f.layout = res.Layout
	return res
}

func pt(x, y float64) entity.Point { return entity.Point{X: x, Y: y} }

func TestDividerDrag_ClampsToMaximum(t *testing.T) {
	ws := entity.NewWorkspace(entity.WorkspaceID("ws"), "two", "left")
	_, err := ws.SplitFocused(entity.SplitHorizontal, "right")
	require.NoError(t, err)
	ctrl := NewController[string](DefaultOptions())
	layout := ws.Layout(viewport, 4)

	res := ctrl.Update(ws, 0, viewport, layout, Frame{Pointer: pt(501, 100), Pressed: true, Down: true})
	_, dragging := ctrl.DividerDrag()
	require.True(t, dragging)
	assert.False(t, res.LayoutChanged, "pressing a divider does not move it")
	assert.InDelta(t, 0.5, ws.Root.Ratio, 1e-9)
	_, armed := ctrl.PaneDrag()
	assert.False(t, armed, "divider and pane drags are exclusive")

	res = ctrl.Update(ws, 0, viewport, res.Layout, Frame{Pointer: pt(900, 100), Down: true})
	assert.True(t, res.LayoutChanged)
	assert.InDelta(t, 0.9, ws.Root.Ratio, 1e-9)
	assert.InDelta(t, 0.9*996, res.Layout.Panes[0].W, 1e-9)

	// Further movement past the clamp does not change the ratio.
	res = ctrl.Update(ws, 0, viewport, res.Layout, Frame{Pointer: pt(950, 100), Down: true})
	assert.False(t, res.LayoutChanged)

	res = ctrl.Update(ws, 0, viewport, res.Layout, Frame{Pointer: pt(300, 100), Released: true})
	assert.False(t, res.LayoutChanged)
	_, dragging = ctrl.DividerDrag()
	assert.False(t, dragging)
	assert.InDelta(t, 0.9, ws.Root.Ratio, 1e-9)
}

func TestDividerDrag_PressAndReleaseInOneFrame(t *testing.T) {
	f := newFixture(t)
	res := f.frame(Frame{Pointer: pt(499, 100), Pressed: true, Released: true})
	assert.False(t, res.LayoutChanged)
	_, ok := f.ctrl.DividerDrag()
	assert.False(t, ok)
	assert.InDelta(t, 0.5, f.ws.Root.Ratio, 1e-9)
}

func TestDividerDrag_NestedSplitUsesItsOwnBounds(t *testing.T) {
	f := newFixture(t)
	// The vertical divider inside the right half sits at y 298..302.
	f.frame(Frame{Pointer: pt(750, 300), Pressed: true, Down: true})
	d, ok := f.ctrl.DividerDrag()
	require.True(t, ok)
	assert.Equal(t, []bool{true}, d.Path)

	res := f.frame(Frame{Pointer: pt(750, 149), Down: true})
	require.True(t, res.LayoutChanged)
	assert.InDelta(t, 149.0/596.0, f.ws.Root.Second.Ratio, 1e-9)
	assert.InDelta(t, 0.5, f.ws.Root.Ratio, 1e-9)
}

func TestDividerDrag_EndsOnWorkspaceSwitch(t *testing.T) {
	f := newFixture(t)
	f.frame(Frame{Pointer: pt(500, 100), Pressed: true, Down: true})
	_, ok := f.ctrl.DividerDrag()
	require.True(t, ok)

	f.ctrl.Update(f.ws, 1, viewport, f.layout, Frame{Pointer: pt(700, 100), Down: true})
	_, ok = f.ctrl.DividerDrag()
	assert.False(t, ok)
	assert.InDelta(t, 0.5, f.ws.Root.Ratio, 1e-9)
}

func TestPaneDrag_DropOnTopEdge(t *testing.T) {
	f := newFixture(t)
	before := f.ws.PaneCount()

	f.frame(Frame{Pointer: pt(750, 450), Pressed: true, Down: true})
	drag, ok := f.ctrl.PaneDrag()
	require.True(t, ok)
	assert.Equal(t, entity.PaneID(2), drag.Source)
	assert.False(t, drag.Active)

	res := f.frame(Frame{Pointer: pt(250, 50), Down: true})
	require.True(t, res.HasHighlight)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 498, H: 300}, res.Highlight)
	require.True(t, res.HasGhost)
	assert.InDelta(t, 2, res.Ghost.X, 1e-9)

	res = f.frame(Frame{Pointer: pt(250, 50), Released: true})
	assert.True(t, res.Moved)
	assert.True(t, res.LayoutChanged)
	assert.Equal(t, before, f.ws.PaneCount())
	require.NoError(t, f.ws.Validate())

	first := f.ws.Root.First
	require.True(t, first.IsSplit())
	assert.Equal(t, entity.SplitVertical, first.Dir)
	assert.Equal(t, entity.PaneID(2), first.First.ID)
	assert.Equal(t, entity.PaneID(0), first.Second.ID)
	assert.Same(t, f.panes[2], first.First.Content)
	assert.Same(t, f.panes[0], first.Second.Content)
	assert.Equal(t, entity.PaneID(2), f.ws.FocusedPaneID)
	assert.Contains(t, res.Layout.Panes, entity.PaneID(2))
}

func TestPaneDrag_DropGoesThroughMover(t *testing.T) {
	f := newFixture(t)
	shape := f.ws.Root.String()

	var gotSource entity.PaneID
	var gotZone entity.DropZone
	f.ctrl.SetMover(func(_ *entity.Workspace[*entity.Pane], source entity.PaneID, zone entity.DropZone) (bool, error) {
		gotSource, gotZone = source, zone
		return false, nil
	})

	f.frame(Frame{Pointer: pt(750, 450), Pressed: true, Down: true})
	f.frame(Frame{Pointer: pt(250, 50), Down: true})
	res := f.frame(Frame{Pointer: pt(250, 50), Released: true})

	assert.Equal(t, entity.PaneID(2), gotSource)
	assert.Equal(t, entity.DropZone{Target: 0, Edge: entity.DropTop}, gotZone)
	assert.False(t, res.Moved)
	assert.False(t, res.LayoutChanged)
	assert.Equal(t, shape, f.ws.Root.String())

	f.ctrl.SetMover(nil)
	f.frame(Frame{Pointer: pt(750, 450), Pressed: true, Down: true})
	f.frame(Frame{Pointer: pt(250, 50), Down: true})
	res = f.frame(Frame{Pointer: pt(250, 50), Released: true})
	assert.True(t, res.Moved)
}

func TestPaneDrag_BelowThresholdIsAClick(t *testing.T) {
	f := newFixture(t)
	f.frame(Frame{Pointer: pt(100, 100), Pressed: true, Down: true})
	res := f.frame(Frame{Pointer: pt(107, 100), Down: true})
	assert.False(t, res.HasHighlight)
	drag, _ := f.ctrl.PaneDrag()
	assert.False(t, drag.Active)

	res = f.frame(Frame{Pointer: pt(107, 100), Released: true})
	assert.False(t, res.Moved)
	assert.True(t, res.FocusChanged)
	assert.Equal(t, entity.PaneID(0), f.ws.FocusedPaneID)
}

func TestPaneDrag_ThresholdIsInclusive(t *testing.T) {
	f := newFixture(t)
	f.frame(Frame{Pointer: pt(100, 100), Pressed: true, Down: true})
	f.frame(Frame{Pointer: pt(108, 100), Down: true})
	drag, ok := f.ctrl.PaneDrag()
	require.True(t, ok)
	assert.True(t, drag.Active)
}

func TestPaneDrag_EscapeCancels(t *testing.T) {
	f := newFixture(t)
	shape := f.ws.Root.String()

	f.frame(Frame{Pointer: pt(750, 450), Pressed: true, Down: true})
	f.frame(Frame{Pointer: pt(250, 50), Down: true})
	f.frame(Frame{Pointer: pt(250, 50), Down: true, Escape: true})
	_, ok := f.ctrl.PaneDrag()
	assert.False(t, ok)

	res := f.frame(Frame{Pointer: pt(250, 50), Released: true})
	assert.False(t, res.Moved)
	assert.Equal(t, shape, f.ws.Root.String())
}

func TestPaneDrag_ReleaseOutsideZonesIsIgnored(t *testing.T) {
	f := newFixture(t)
	shape := f.ws.Root.String()

	f.frame(Frame{Pointer: pt(750, 450), Pressed: true, Down: true})
	// Centre of pane 0 is outside every edge zone.
	res := f.frame(Frame{Pointer: pt(249, 300), Down: true})
	assert.False(t, res.HasHighlight)
	res = f.frame(Frame{Pointer: pt(249, 300), Released: true})
	assert.False(t, res.Moved)
	assert.Equal(t, shape, f.ws.Root.String())
}

func TestPaneDrag_SinglePaneIgnored(t *testing.T) {
	ws := entity.NewWorkspace(entity.WorkspaceID("ws"), "one", "only")
	ctrl := NewController[string](Options{})
	layout := ws.Layout(viewport, ctrl.Options().DividerWidth)

	ctrl.Update(ws, 0, viewport, layout, Frame{Pointer: pt(10, 10), Pressed: true, Down: true})
	res := ctrl.Update(ws, 0, viewport, layout, Frame{Pointer: pt(400, 10), Down: true})
	assert.False(t, res.HasHighlight)
	res = ctrl.Update(ws, 0, viewport, layout, Frame{Pointer: pt(400, 10), Released: true})
	assert.False(t, res.Moved)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestNewController_FillsDefaults(t *testing.T) {
	ctrl := NewController[string](Options{DragThreshold: 2})
	opts := ctrl.Options()
	assert.InDelta(t, 2, opts.DragThreshold, 1e-9)
	assert.InDelta(t, entity.DefaultDividerWidth, opts.DividerWidth, 1e-9)
	assert.InDelta(t, entity.DefaultDropEdgeRatio, opts.EdgeRatio, 1e-9)
}
