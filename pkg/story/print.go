package story

import (
	"fmt"
	"io"
)

// Print writes every node to w in display order: numeric ids ascending, then
// non-numeric ids lexicographically. Each node shows its trimmed payload text
// and its direct children by id (not expanded recursively).
func (t *Tree[T]) Print(w io.Writer) {
	if len(t.nodes) == 0 {
		fmt.Fprintln(w, "Tree is empty.")
		return
	}

	fmt.Fprintln(w, "===== Story Tree =====")
	for _, id := range t.IDs() {
		node := t.nodes[id]
		fmt.Fprintf(w, "Node %s: %s\n", id, t.render(node.Data))
		if len(node.children) == 0 {
			fmt.Fprintln(w, "  Child -> (none)")
		} else {
			for _, c := range node.children {
				fmt.Fprintf(w, "  Child -> %s\n", c.ID)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "======================")
}
