package story

// Tree is a directed graph of story nodes keyed by id. Despite the name it is
// not a strict tree: multiple parents may reference the same child, and
// nothing prevents diamonds, self-loops or cycles. The node map is the single
// owner of every node instance; edges only borrow.
//
// A Tree is built single-threaded and then queried single-threaded. It is not
// safe for concurrent mutation.
type Tree[T any] struct {
	root   *Node[T]
	nodes  map[string]*Node[T]
	render Renderer[T]
}

// Option configures a Tree.
type Option[T any] func(*Tree[T])

// WithRenderer sets a custom payload renderer, replacing the default
// fmt-based one.
func WithRenderer[T any](r Renderer[T]) Option[T] {
	return func(t *Tree[T]) {
		t.render = r
	}
}

// New creates an empty tree.
func New[T any](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		nodes:  make(map[string]*Node[T]),
		render: DefaultRenderer[T](),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetRoot designates the node with the given id as the story's starting
// point, creating it if necessary. If the id already exists its payload is
// overwritten with value; this is the only operation allowed to do that.
// The previous root, if any, stays in the registry.
func (t *Tree[T]) SetRoot(id string, value T) {
	node, ok := t.nodes[id]
	if ok {
		node.Data = value
	} else {
		node = &Node[T]{ID: id, Data: value}
		t.nodes[id] = node
	}
	t.root = node
}

// AddEdge links childID under parentID, creating either node if missing.
// A missing parent is created with a zero-value payload; a missing child is
// created with the supplied value. If the child already exists its payload is
// left untouched (first writer wins), so value is ignored for known ids.
// The edge is skipped if the parent already references that child. Self-loops
// are permitted.
func (t *Tree[T]) AddEdge(parentID, childID string, value T) {
	parent, ok := t.nodes[parentID]
	if !ok {
		var zero T
		parent = &Node[T]{ID: parentID, Data: zero}
		t.nodes[parentID] = parent
	}

	child, ok := t.nodes[childID]
	if !ok {
		child = &Node[T]{ID: childID, Data: value}
		t.nodes[childID] = child
	}

	for _, existing := range parent.children {
		if existing == child {
			return
		}
	}
	parent.children = append(parent.children, child)
}

// Find returns the node with the given id, or false if absent. Pure query.
func (t *Tree[T]) Find(id string) (*Node[T], bool) {
	node, ok := t.nodes[id]
	return node, ok
}

// Root returns the designated root node, or false if none has been set.
func (t *Tree[T]) Root() (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root, true
}

// Len returns the number of nodes in the registry.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// IDs returns every node id in display order (see SortIDs).
func (t *Tree[T]) IDs() []string {
	ids := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

// Render produces the trimmed display text for a node's payload using the
// tree's renderer.
func (t *Tree[T]) Render(n *Node[T]) string {
	return t.render(n.Data)
}
