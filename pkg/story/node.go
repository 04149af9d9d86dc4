package story

// Node represents a single story beat in the graph.
// Nodes are owned by the Tree that created them; the references held in
// Children are borrowed views into that storage and become invalid once the
// owning tree is released.
type Node[T any] struct {
	ID   string
	Data T

	// children holds borrowed references, insertion order preserved.
	// The same node may appear as a child of multiple parents, but never
	// twice under the same parent.
	children []*Node[T]
}

// Children returns the node's child references in insertion order.
// The returned slice is shared with the node; callers must not mutate it.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// IsLeaf reports whether the node has no outgoing edges.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}
