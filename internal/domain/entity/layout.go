package entity

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	MinSplitRatio     = 0.1 // smallest share a split child may get
	MaxSplitRatio     = 0.9 // largest share a split child may get
	DefaultSplitRatio = 0.5

	// DefaultDividerWidth is the divider thickness in pixels.
	DefaultDividerWidth = 4.0
)

// ErrInvalidTree is wrapped by Validate for every broken tree invariant.
var ErrInvalidTree = errors.New("invalid layout tree")

// Node is a node of the binary split tree. It is either:
//   - Leaf node: ID and Content set, no children
//   - Split node: Dir, Ratio and both children set
//
// Every child is owned by exactly one parent. There are no parent pointers,
// so a subtree can be promoted or detached without leaving stale references.
type Node[T any] struct {
	ID      PaneID
	Content T

	Dir    SplitDirection
	Ratio  float64  // share of the first child, 0.1-0.9
	First  *Node[T] // left/top
	Second *Node[T] // right/bottom
}

// NewLeaf creates a leaf node.
func NewLeaf[T any](id PaneID, content T) *Node[T] {
	return &Node[T]{ID: id, Content: content}
}

// NewSplit creates a split node owning both children. The ratio is clamped.
func NewSplit[T any](dir SplitDirection, ratio float64, first, second *Node[T]) *Node[T] {
	return &Node[T]{
		Dir:    dir,
		Ratio:  ClampRatio(ratio),
		First:  first,
		Second: second,
	}
}

// IsLeaf returns true if this node holds a pane.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.First == nil && n.Second == nil
}

// IsSplit returns true if this node divides space between two children.
func (n *Node[T]) IsSplit() bool {
	return n != nil && n.First != nil && n.Second != nil
}

// Child returns the second child when second is true, the first otherwise.
func (n *Node[T]) Child(second bool) *Node[T] {
	if second {
		return n.Second
	}
	return n.First
}

// Walk traverses the tree depth-first, first child before second.
// Returns early if fn returns false.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.First != nil && !n.First.Walk(fn) {
		return false
	}
	if n.Second != nil && !n.Second.Walk(fn) {
		return false
	}
	return true
}

// All iterates leaves in DFS order.
func (n *Node[T]) All() iter.Seq2[PaneID, T] {
	return func(yield func(PaneID, T) bool) {
		n.Walk(func(node *Node[T]) bool {
			if node.IsLeaf() {
				return yield(node.ID, node.Content)
			}
			return true
		})
	}
}

// LeafCount returns the number of panes in the tree.
func (n *Node[T]) LeafCount() int {
	count := 0
	for range n.All() {
		count++
	}
	return count
}

// PaneIDs returns all pane IDs in DFS order.
func (n *Node[T]) PaneIDs() []PaneID {
	var ids []PaneID
	for id := range n.All() {
		ids = append(ids, id)
	}
	return ids
}

// Leaf returns the leaf node holding target, or nil.
func (n *Node[T]) Leaf(target PaneID) *Node[T] {
	var found *Node[T]
	n.Walk(func(node *Node[T]) bool {
		if node.IsLeaf() && node.ID == target {
			found = node
			return false
		}
		return true
	})
	return found
}

// Contains reports whether target is a leaf of the tree.
func (n *Node[T]) Contains(target PaneID) bool {
	return n.Leaf(target) != nil
}

// ContentOf returns the content of the leaf holding target.
func (n *Node[T]) ContentOf(target PaneID) (T, bool) {
	if leaf := n.Leaf(target); leaf != nil {
		return leaf.Content, true
	}
	var zero T
	return zero, false
}

// ContentPtr returns a pointer to the content of the leaf holding target,
// allowing in-place replacement. Returns nil if target is absent.
func (n *Node[T]) ContentPtr(target PaneID) *T {
	if leaf := n.Leaf(target); leaf != nil {
		return &leaf.Content
	}
	return nil
}

// Find returns the first leaf in DFS order whose content matches.
func (n *Node[T]) Find(match func(T) bool) (PaneID, bool) {
	for id, content := range n.All() {
		if match(content) {
			return id, true
		}
	}
	return 0, false
}

// FindPath returns the child choices (false=first, true=second) leading
// from n to the leaf holding target.
func (n *Node[T]) FindPath(target PaneID) ([]bool, bool) {
	var path []bool
	var search func(node *Node[T]) bool
	search = func(node *Node[T]) bool {
		if node == nil {
			return false
		}
		if node.IsLeaf() {
			return node.ID == target
		}
		path = append(path, false)
		if search(node.First) {
			return true
		}
		path[len(path)-1] = true
		if search(node.Second) {
			return true
		}
		path = path[:len(path)-1]
		return false
	}
	if !search(n) {
		return nil, false
	}
	return path, true
}

// NodeAt follows path from n and returns the node it ends on, or nil if
// the path runs through a leaf.
func (n *Node[T]) NodeAt(path []bool) *Node[T] {
	node := n
	for _, second := range path {
		if !node.IsSplit() {
			return nil
		}
		node = node.Child(second)
	}
	return node
}

// SplitAt returns the split node addressed by path, or nil when the path
// is invalid or ends on a leaf.
func (n *Node[T]) SplitAt(path []bool) *Node[T] {
	node := n.NodeAt(path)
	if !node.IsSplit() {
		return nil
	}
	return node
}

// String renders the tree structure, e.g. "H(0.50 [0] V(0.50 [1] [2]))".
func (n *Node[T]) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node[T]) format(b *strings.Builder) {
	switch {
	case n == nil:
		b.WriteString("<nil>")
	case n.IsLeaf():
		fmt.Fprintf(b, "[%d]", n.ID)
	default:
		dir := "H"
		if n.Dir == SplitVertical {
			dir = "V"
		}
		fmt.Fprintf(b, "%s(%.2f ", dir, n.Ratio)
		n.First.format(b)
		b.WriteByte(' ')
		n.Second.format(b)
		b.WriteByte(')')
	}
}

// Validate checks the structural invariants: a non-empty full binary tree,
// unique pane IDs, split directions set and ratios within bounds.
func (n *Node[T]) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: empty tree", ErrInvalidTree)
	}
	seen := make(map[PaneID]struct{})
	var err error
	n.Walk(func(node *Node[T]) bool {
		switch {
		case node.IsLeaf():
			if _, dup := seen[node.ID]; dup {
				err = fmt.Errorf("%w: duplicate pane %d", ErrInvalidTree, node.ID)
				return false
			}
			seen[node.ID] = struct{}{}
		case !node.IsSplit():
			err = fmt.Errorf("%w: split with a single child", ErrInvalidTree)
			return false
		case node.Dir != SplitHorizontal && node.Dir != SplitVertical:
			err = fmt.Errorf("%w: split without direction", ErrInvalidTree)
			return false
		case node.Ratio < MinSplitRatio || node.Ratio > MaxSplitRatio:
			err = fmt.Errorf("%w: ratio %.3f out of bounds", ErrInvalidTree, node.Ratio)
			return false
		}
		return true
	})
	return err
}

// Divider describes the draggable strip between a split's children.
type Divider struct {
	// Path addresses the split node this divider belongs to.
	Path   []bool
	Dir    SplitDirection
	Rect   Rect
	Bounds Rect // rectangle occupied by the whole split
}

// ComputedLayout is the per-frame geometry of a tree. It is never persisted.
type ComputedLayout struct {
	Panes     map[PaneID]Rect
	PaneOrder []PaneID // DFS order of Panes keys
	Dividers  []Divider
}

// Divider returns the divider of the split addressed by path.
func (l ComputedLayout) Divider(path []bool) (Divider, bool) {
	for _, d := range l.Dividers {
		if slices.Equal(d.Path, path) {
			return d, true
		}
	}
	return Divider{}, false
}

// PaneAt returns the pane whose rectangle contains p.
func (l ComputedLayout) PaneAt(p Point) (PaneID, bool) {
	for _, id := range l.PaneOrder {
		if l.Panes[id].Contains(p) {
			return id, true
		}
	}
	return 0, false
}

// DividerAt returns the divider whose rectangle contains p.
func (l ComputedLayout) DividerAt(p Point) (Divider, bool) {
	for _, d := range l.Dividers {
		if d.Rect.Contains(p) {
			return d, true
		}
	}
	return Divider{}, false
}

// ComputeLayout turns a tree into pane rectangles and divider rectangles
// tiling bounds exactly. Degenerate bounds yield zero or negative sized
// rectangles rather than an error.
func ComputeLayout[T any](root *Node[T], bounds Rect, dividerWidth float64) ComputedLayout {
	out := ComputedLayout{Panes: make(map[PaneID]Rect)}
	computeNode(root, bounds, dividerWidth, nil, &out)
	return out
}

func computeNode[T any](node *Node[T], rect Rect, dividerWidth float64, path []bool, out *ComputedLayout) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		out.Panes[node.ID] = rect
		out.PaneOrder = append(out.PaneOrder, node.ID)
		return
	}

	first, divider, second := SplitRect(rect, node.Dir, node.Ratio, dividerWidth)
	out.Dividers = append(out.Dividers, Divider{
		Path:   slices.Clone(path),
		Dir:    node.Dir,
		Rect:   divider,
		Bounds: rect,
	})

	computeNode(node.First, first, dividerWidth, append(slices.Clip(path), false), out)
	computeNode(node.Second, second, dividerWidth, append(slices.Clip(path), true), out)
}
