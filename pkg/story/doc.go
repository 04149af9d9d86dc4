/*
Package story implements the node registry at the heart of the engine: a
directed graph of story beats keyed by unique string ids, with shared-child
semantics (the same node may hang under several parents) and a single
designated root.

The registry owns every node; child sequences hold borrowed references into
that storage. Nodes are created lazily by SetRoot and AddEdge, so edges may
reference ids before they are fully defined and later operations converge on
the same shared instance. This package is kept pure: no I/O beyond the Print
diagnostic, no external dependencies.

# Key Entities

  - Node: A story beat with an id, a generic payload, and ordered child references.
  - Tree: The owning registry with root designation, edge insertion, and lookup.
  - Renderer: The single capability required of a payload type — produce display text.
*/
package story
