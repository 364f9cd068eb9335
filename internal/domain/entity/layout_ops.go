package entity

// Tree transforms take ownership of the tree passed in and return the tree
// that replaces it. The caller must not keep using the input after the
// call. Leaf nodes keep their identity across every transform, so content
// values are never copied or reconstructed.
//
// When a transform is not performed (target absent, last pane, duplicate
// ID) the input tree is returned unchanged together with false.

// SplitNode replaces the leaf target with a split whose first child is the
// original leaf and whose second child is a new leaf holding content.
func SplitNode[T any](root *Node[T], target PaneID, dir SplitDirection, newID PaneID, content T) (*Node[T], bool) {
	return InsertAdjacent(root, target, newID, content, dir, false)
}

// InsertAdjacent replaces the leaf target with a split of direction dir.
// The new leaf becomes the first child (left/top) when before is true,
// the second child (right/bottom) otherwise. The ratio is reset to 0.5.
func InsertAdjacent[T any](root *Node[T], target, newID PaneID, content T, dir SplitDirection, before bool) (*Node[T], bool) {
	if root == nil || root.Contains(newID) {
		return root, false
	}
	return insertAt(root, target, NewLeaf(newID, content), dir, before)
}

func insertAt[T any](node *Node[T], target PaneID, leaf *Node[T], dir SplitDirection, before bool) (*Node[T], bool) {
	if node.IsLeaf() {
		if node.ID != target {
			return node, false
		}
		if before {
			return NewSplit(dir, DefaultSplitRatio, leaf, node), true
		}
		return NewSplit(dir, DefaultSplitRatio, node, leaf), true
	}

	if first, ok := insertAt(node.First, target, leaf, dir, before); ok {
		node.First = first
		return node, true
	}
	if second, ok := insertAt(node.Second, target, leaf, dir, before); ok {
		node.Second = second
		return node, true
	}
	return node, false
}

// CloseNode removes the leaf target and promotes its sibling into the
// parent split's position, keeping the sibling's own ratio and structure.
// Returns false when target is the only pane or is not in the tree.
func CloseNode[T any](root *Node[T], target PaneID) (*Node[T], bool) {
	rest, _, ok := detach(root, target)
	return rest, ok
}

// ExtractNode removes the leaf target like CloseNode and hands back its
// content so it can be inserted elsewhere, possibly in another tree.
func ExtractNode[T any](root *Node[T], target PaneID) (*Node[T], T, bool) {
	rest, leaf, ok := detach(root, target)
	if !ok {
		var zero T
		return root, zero, false
	}
	return rest, leaf.Content, true
}

// detach unlinks the leaf target from the tree rooted at node. It returns
// the replacement for node, the detached leaf, and whether it happened.
func detach[T any](node *Node[T], target PaneID) (*Node[T], *Node[T], bool) {
	if !node.IsSplit() {
		// A lone leaf cannot be removed: the tree would become empty.
		return node, nil, false
	}

	if node.First.IsLeaf() && node.First.ID == target {
		return node.Second, node.First, true
	}
	if node.Second.IsLeaf() && node.Second.ID == target {
		return node.First, node.Second, true
	}

	if first, leaf, ok := detach(node.First, target); ok {
		node.First = first
		return node, leaf, true
	}
	if second, leaf, ok := detach(node.Second, target); ok {
		node.Second = second
		return node, leaf, true
	}
	return node, nil, false
}
