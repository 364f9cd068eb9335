package entity

const (
	// DefaultDropEdgeRatio is the share of a pane edge that accepts drops.
	DefaultDropEdgeRatio = 0.25
	// DefaultDropHighlightRatio is the share of a pane highlighted as preview.
	DefaultDropHighlightRatio = 0.5
)

// DropEdge is the side of a target pane a dragged pane is dropped on.
type DropEdge int

const (
	DropTop DropEdge = iota
	DropBottom
	DropLeft
	DropRight
)

func (e DropEdge) String() string {
	switch e {
	case DropTop:
		return "top"
	case DropBottom:
		return "bottom"
	case DropLeft:
		return "left"
	case DropRight:
		return "right"
	default:
		return "unknown"
	}
}

// DropZone names a target pane and the edge the drop lands on.
type DropZone struct {
	Target PaneID
	Edge   DropEdge
}

// Placement returns the split direction created by the drop and whether
// the dropped pane goes before (left/top) the target.
func (z DropZone) Placement() (dir SplitDirection, before bool) {
	switch z.Edge {
	case DropTop:
		return SplitVertical, true
	case DropBottom:
		return SplitVertical, false
	case DropLeft:
		return SplitHorizontal, true
	default:
		return SplitHorizontal, false
	}
}

// DropZoneInfo carries a drop zone with its hit-test rectangle and the
// larger rectangle highlighted as feedback while hovering.
type DropZoneInfo struct {
	Zone      DropZone
	Rect      Rect
	Highlight Rect
}

// ComputeDropZones returns four zones (top, bottom, left, right) for every
// pane except source, in DFS order of the target panes.
func ComputeDropZones(layout ComputedLayout, source PaneID, edgeRatio, highlightRatio float64) []DropZoneInfo {
	zones := make([]DropZoneInfo, 0, 4*len(layout.PaneOrder))
	for _, id := range layout.PaneOrder {
		if id == source {
			continue
		}
		r := layout.Panes[id]
		eh, ew := r.H*edgeRatio, r.W*edgeRatio
		hh, hw := r.H*highlightRatio, r.W*highlightRatio

		zones = append(zones,
			DropZoneInfo{
				Zone:      DropZone{Target: id, Edge: DropTop},
				Rect:      Rect{X: r.X, Y: r.Y, W: r.W, H: eh},
				Highlight: Rect{X: r.X, Y: r.Y, W: r.W, H: hh},
			},
			DropZoneInfo{
				Zone:      DropZone{Target: id, Edge: DropBottom},
				Rect:      Rect{X: r.X, Y: r.MaxY() - eh, W: r.W, H: eh},
				Highlight: Rect{X: r.X, Y: r.Y + r.H - hh, W: r.W, H: hh},
			},
			DropZoneInfo{
				Zone:      DropZone{Target: id, Edge: DropLeft},
				Rect:      Rect{X: r.X, Y: r.Y, W: ew, H: r.H},
				Highlight: Rect{X: r.X, Y: r.Y, W: hw, H: r.H},
			},
			DropZoneInfo{
				Zone:      DropZone{Target: id, Edge: DropRight},
				Rect:      Rect{X: r.MaxX() - ew, Y: r.Y, W: ew, H: r.H},
				Highlight: Rect{X: r.X + r.W - hw, Y: r.Y, W: hw, H: r.H},
			},
		)
	}
	return zones
}

// HitDropZone returns the first zone whose hit rectangle contains p.
func HitDropZone(zones []DropZoneInfo, p Point) (DropZoneInfo, bool) {
	for _, z := range zones {
		if z.Rect.Contains(p) {
			return z, true
		}
	}
	return DropZoneInfo{}, false
}
