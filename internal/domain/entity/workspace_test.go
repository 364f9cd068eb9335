package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *Workspace[*payload] {
	t.Helper()
	ws := NewWorkspace[*payload]("ws", "test", &payload{"p0"})
	require.Equal(t, PaneID(0), ws.FocusedPaneID)
	require.Equal(t, PaneID(1), ws.NextPaneID)
	return ws
}

func TestWorkspace_SplitFocusedAllocatesMonotonicIDs(t *testing.T) {
	ws := newTestWorkspace(t)

	id1, err := ws.SplitFocused(SplitHorizontal, &payload{"p1"})
	require.NoError(t, err)
	assert.Equal(t, PaneID(1), id1)
	assert.Equal(t, id1, ws.FocusedPaneID)

	id2, err := ws.SplitFocused(SplitVertical, &payload{"p2"})
	require.NoError(t, err)
	assert.Equal(t, PaneID(2), id2)
	assert.Equal(t, []PaneID{0, 1, 2}, ws.PaneIDs())

	_, err = ws.ClosePane(id2)
	require.NoError(t, err)

	id3, err := ws.SplitFocused(SplitVertical, &payload{"p3"})
	require.NoError(t, err)
	assert.Equal(t, PaneID(3), id3, "closed IDs are never reused")
	require.NoError(t, ws.Validate())
}

func TestWorkspace_SplitPaneUnknownTarget(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.SplitPane(9, SplitHorizontal, &payload{"x"})
	require.ErrorIs(t, err, ErrPaneNotFound)
	assert.Equal(t, 1, ws.PaneCount())
}

func TestWorkspace_ClosePaneFocusPolicy(t *testing.T) {
	build := func() *Workspace[*payload] {
		ws := newTestWorkspace(t)
		for i := 0; i < 3; i++ {
			_, err := ws.SplitFocused(SplitHorizontal, &payload{"p"})
			require.NoError(t, err)
		}
		require.Equal(t, []PaneID{0, 1, 2, 3}, ws.PaneIDs())
		return ws
	}

	tests := []struct {
		name      string
		focus     PaneID
		close     PaneID
		wantFocus PaneID
	}{
		{name: "focused middle pane falls back to previous", focus: 2, close: 2, wantFocus: 1},
		{name: "focused last pane falls back to previous", focus: 3, close: 3, wantFocus: 2},
		{name: "focused first pane falls back to next", focus: 0, close: 0, wantFocus: 1},
		{name: "closing a background pane keeps focus", focus: 3, close: 1, wantFocus: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := build()
			require.NoError(t, ws.Focus(tt.focus))

			content, err := ws.ClosePane(tt.close)
			require.NoError(t, err)
			assert.NotNil(t, content)
			assert.Equal(t, tt.wantFocus, ws.FocusedPaneID)
			assert.False(t, ws.HasPane(tt.close))
			require.NoError(t, ws.Validate())
		})
	}
}

func TestWorkspace_ClosePaneRejections(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.ClosePane(0)
	require.ErrorIs(t, err, ErrLastPane)
	assert.Equal(t, 1, ws.PaneCount())

	_, err = ws.SplitFocused(SplitVertical, &payload{"p1"})
	require.NoError(t, err)
	_, err = ws.ClosePane(5)
	require.ErrorIs(t, err, ErrPaneNotFound)
	assert.Equal(t, 2, ws.PaneCount())
}

func TestWorkspace_FocusCyclingWraps(t *testing.T) {
	ws := newTestWorkspace(t)
	for i := 0; i < 2; i++ {
		_, err := ws.SplitFocused(SplitVertical, &payload{"p"})
		require.NoError(t, err)
	}
	require.NoError(t, ws.Focus(0))

	ws.FocusNext()
	assert.Equal(t, PaneID(1), ws.FocusedPaneID)
	ws.FocusNext()
	ws.FocusNext()
	assert.Equal(t, PaneID(0), ws.FocusedPaneID)

	ws.FocusPrev()
	assert.Equal(t, PaneID(2), ws.FocusedPaneID)

	require.ErrorIs(t, ws.Focus(12), ErrPaneNotFound)
	assert.Equal(t, PaneID(2), ws.FocusedPaneID)
}

func TestWorkspace_FindPaneAndContent(t *testing.T) {
	ws := newTestWorkspace(t)
	target := &payload{"session-7"}
	id, err := ws.SplitFocused(SplitHorizontal, target)
	require.NoError(t, err)

	found, ok := ws.FindPane(func(p *payload) bool { return p.name == "session-7" })
	require.True(t, ok)
	assert.Equal(t, id, found)

	content, ok := ws.ContentOf(id)
	require.True(t, ok)
	assert.Same(t, target, content)
	assert.Same(t, target, ws.Focused())

	replacement := &payload{"other"}
	*ws.ContentPtr(id) = replacement
	content, _ = ws.ContentOf(id)
	assert.Same(t, replacement, content)

	_, ok = ws.FindPane(func(p *payload) bool { return p.name == "missing" })
	assert.False(t, ok)
}

func TestWorkspace_MovePaneToTopOfTarget(t *testing.T) {
	ws := newTestWorkspace(t)
	p0, _ := ws.ContentOf(0)
	_, err := ws.SplitFocused(SplitHorizontal, &payload{"p1"})
	require.NoError(t, err)
	p2 := &payload{"p2"}
	_, err = ws.SplitFocused(SplitVertical, p2)
	require.NoError(t, err)
	require.NoError(t, ws.Focus(0))

	require.NoError(t, ws.MovePane(2, DropZone{Target: 0, Edge: DropTop}))

	assert.Equal(t, PaneID(2), ws.FocusedPaneID)
	assert.Equal(t, "H(0.50 V(0.50 [2] [0]) [1])", ws.Root.String())

	split := ws.Root.First
	assert.Equal(t, SplitVertical, split.Dir)
	assert.Same(t, p2, split.First.Content)
	assert.Same(t, p0, split.Second.Content)
	require.NoError(t, ws.Validate())
}

func TestWorkspace_MovePaneRejections(t *testing.T) {
	ws := newTestWorkspace(t)
	require.ErrorIs(t, ws.MovePane(0, DropZone{Target: 3, Edge: DropLeft}), ErrPaneNotFound)

	_, err := ws.SplitFocused(SplitHorizontal, &payload{"p1"})
	require.NoError(t, err)
	require.Error(t, ws.MovePane(1, DropZone{Target: 1, Edge: DropLeft}))
	require.ErrorIs(t, ws.MovePane(8, DropZone{Target: 0, Edge: DropLeft}), ErrPaneNotFound)
	assert.Equal(t, "H(0.50 [0] [1])", ws.Root.String())
}

func TestWorkspace_SetRatioAt(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.SplitFocused(SplitHorizontal, &payload{"p1"})
	require.NoError(t, err)
	_, err = ws.SplitFocused(SplitVertical, &payload{"p2"})
	require.NoError(t, err)

	changed, err := ws.SetRatioAt([]bool{true}, 0.95)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, MaxSplitRatio, ws.Root.Second.Ratio)

	changed, err = ws.SetRatioAt([]bool{true}, 0.97)
	require.NoError(t, err)
	assert.False(t, changed, "clamped to the same value")

	_, err = ws.SetRatioAt([]bool{false}, 0.3)
	require.ErrorIs(t, err, ErrSplitNotFound)
}

func TestWorkspace_Layout(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.SplitFocused(SplitHorizontal, &payload{"p1"})
	require.NoError(t, err)

	layout := ws.Layout(Rect{W: 1000, H: 800}, DefaultDividerWidth)
	assert.Len(t, layout.Panes, 2)
	assert.Len(t, layout.Dividers, 1)
	assert.InDelta(t, 498, layout.Panes[0].W, eps)
}
