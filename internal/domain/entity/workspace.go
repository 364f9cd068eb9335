package entity

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

var (
	// ErrLastPane is returned when an operation would leave a workspace empty.
	ErrLastPane = errors.New("cannot remove the last pane")
	// ErrPaneNotFound is returned when a pane ID is not part of the workspace.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrSplitNotFound is returned when a divider path does not address a split.
	ErrSplitNotFound = errors.New("split not found")
)

// WorkspaceID uniquely identifies a workspace.
type WorkspaceID string

// Workspace owns one pane tree, the focused pane and the pane ID counter.
// It is mutated by a single goroutine (the UI loop); no locking is done.
type Workspace[T any] struct {
	ID            WorkspaceID
	Name          string
	Root          *Node[T] // never nil
	FocusedPaneID PaneID   // always names a leaf of Root
	NextPaneID    PaneID   // greater than every ID issued so far
	CreatedAt     time.Time
}

// NewWorkspace creates a workspace holding a single pane with ID 0.
func NewWorkspace[T any](id WorkspaceID, name string, content T) *Workspace[T] {
	return &Workspace[T]{
		ID:            id,
		Name:          name,
		Root:          NewLeaf(PaneID(0), content),
		FocusedPaneID: 0,
		NextPaneID:    1,
		CreatedAt:     time.Now(),
	}
}

func (w *Workspace[T]) allocPaneID() PaneID {
	id := w.NextPaneID
	w.NextPaneID++
	return id
}

// PaneCount returns the number of panes in the workspace.
func (w *Workspace[T]) PaneCount() int {
	return w.Root.LeafCount()
}

// PaneIDs returns pane IDs in DFS order.
func (w *Workspace[T]) PaneIDs() []PaneID {
	return w.Root.PaneIDs()
}

// All iterates panes and their content in DFS order.
func (w *Workspace[T]) All() iter.Seq2[PaneID, T] {
	return w.Root.All()
}

// HasPane reports whether id names a pane of this workspace.
func (w *Workspace[T]) HasPane(id PaneID) bool {
	return w.Root.Contains(id)
}

// ContentOf returns the content of a pane.
func (w *Workspace[T]) ContentOf(id PaneID) (T, bool) {
	return w.Root.ContentOf(id)
}

// ContentPtr returns a mutable pointer to the content of a pane, or nil.
func (w *Workspace[T]) ContentPtr(id PaneID) *T {
	return w.Root.ContentPtr(id)
}

// Focused returns the content of the focused pane.
func (w *Workspace[T]) Focused() T {
	content, _ := w.Root.ContentOf(w.FocusedPaneID)
	return content
}

// FindPane returns the pane whose content matches, e.g. the pane owning
// a given terminal session.
func (w *Workspace[T]) FindPane(match func(T) bool) (PaneID, bool) {
	return w.Root.Find(match)
}

// Layout computes pane and divider geometry for the given viewport.
func (w *Workspace[T]) Layout(bounds Rect, dividerWidth float64) ComputedLayout {
	return ComputeLayout(w.Root, bounds, dividerWidth)
}

// SplitFocused splits the focused pane, placing content in a new pane to
// the right (horizontal) or below (vertical). The new pane gets focus.
func (w *Workspace[T]) SplitFocused(dir SplitDirection, content T) (PaneID, error) {
	return w.SplitPane(w.FocusedPaneID, dir, content)
}

// SplitPane splits target and focuses the new pane.
func (w *Workspace[T]) SplitPane(target PaneID, dir SplitDirection, content T) (PaneID, error) {
	if !w.HasPane(target) {
		return 0, fmt.Errorf("split %d: %w", target, ErrPaneNotFound)
	}
	newID := w.allocPaneID()
	root, ok := SplitNode(w.Root, target, dir, newID, content)
	w.Root = root
	if !ok {
		return 0, fmt.Errorf("split %d: %w", target, ErrPaneNotFound)
	}
	w.FocusedPaneID = newID
	return newID, nil
}

// ClosePane removes a pane and returns its content so the caller can
// release whatever backs it. The last pane is never removed.
//
// When the focused pane closes, focus moves to the DFS-previous pane, or
// to the DFS-next one if the closed pane came first. The neighbour is
// picked before the tree changes since the transform does not report which
// subtree absorbed the space.
func (w *Workspace[T]) ClosePane(id PaneID) (T, error) {
	var zero T
	ids := w.PaneIDs()
	if len(ids) <= 1 {
		return zero, ErrLastPane
	}
	idx := slices.Index(ids, id)
	if idx < 0 {
		return zero, fmt.Errorf("close %d: %w", id, ErrPaneNotFound)
	}

	newFocus := w.FocusedPaneID
	if id == w.FocusedPaneID {
		if idx > 0 {
			newFocus = ids[idx-1]
		} else {
			newFocus = ids[1]
		}
	}

	content, _ := w.Root.ContentOf(id)
	root, ok := CloseNode(w.Root, id)
	w.Root = root
	if !ok {
		return zero, fmt.Errorf("close %d: %w", id, ErrLastPane)
	}
	w.FocusedPaneID = newFocus
	return content, nil
}

// Focus moves focus to id.
func (w *Workspace[T]) Focus(id PaneID) error {
	if !w.HasPane(id) {
		return fmt.Errorf("focus %d: %w", id, ErrPaneNotFound)
	}
	w.FocusedPaneID = id
	return nil
}

// FocusNext moves focus to the next pane in DFS order, wrapping around.
func (w *Workspace[T]) FocusNext() {
	w.cycleFocus(1)
}

// FocusPrev moves focus to the previous pane in DFS order, wrapping around.
func (w *Workspace[T]) FocusPrev() {
	w.cycleFocus(-1)
}

func (w *Workspace[T]) cycleFocus(step int) {
	ids := w.PaneIDs()
	idx := slices.Index(ids, w.FocusedPaneID)
	if idx < 0 {
		return
	}
	w.FocusedPaneID = ids[(idx+step+len(ids))%len(ids)]
}

// MovePane relocates source next to the zone's target, keeping its pane ID
// and content, and focuses it. Returns ErrLastPane when source is the only
// pane; callers treat that as a no-op.
func (w *Workspace[T]) MovePane(source PaneID, zone DropZone) error {
	if source == zone.Target {
		return fmt.Errorf("move %d onto itself: %w", source, ErrPaneNotFound)
	}
	if !w.HasPane(zone.Target) {
		return fmt.Errorf("move target %d: %w", zone.Target, ErrPaneNotFound)
	}
	if !w.HasPane(source) {
		return fmt.Errorf("move source %d: %w", source, ErrPaneNotFound)
	}

	rest, content, ok := ExtractNode(w.Root, source)
	if !ok {
		return ErrLastPane
	}
	dir, before := zone.Placement()
	// The target was checked above and is never the extracted pane, so the
	// insert cannot miss.
	w.Root, _ = InsertAdjacent(rest, zone.Target, source, content, dir, before)
	w.FocusedPaneID = source
	return nil
}

// SetRatioAt sets the ratio of the split addressed by path, clamped to the
// allowed range. Reports whether the stored ratio changed.
func (w *Workspace[T]) SetRatioAt(path []bool, ratio float64) (bool, error) {
	split := w.Root.SplitAt(path)
	if split == nil {
		return false, ErrSplitNotFound
	}
	ratio = ClampRatio(ratio)
	if split.Ratio == ratio {
		return false, nil
	}
	split.Ratio = ratio
	return true, nil
}

// Validate checks the tree invariants plus the workspace bookkeeping.
func (w *Workspace[T]) Validate() error {
	if err := w.Root.Validate(); err != nil {
		return err
	}
	if !w.HasPane(w.FocusedPaneID) {
		return fmt.Errorf("%w: focused pane %d missing", ErrInvalidTree, w.FocusedPaneID)
	}
	for _, id := range w.PaneIDs() {
		if id >= w.NextPaneID {
			return fmt.Errorf("%w: pane %d not below next id %d", ErrInvalidTree, id, w.NextPaneID)
		}
	}
	return nil
}
