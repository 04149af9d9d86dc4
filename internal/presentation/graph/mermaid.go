// Package graph renders a story tree as a Mermaid flowchart for
// documentation and debugging.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fabula/pkg/story"
)

// maxLabelLen bounds node labels so large story beats stay readable in the
// diagram; the full text is still available via print/serve.
const maxLabelLen = 40

// GenerateMermaid produces Mermaid flowchart syntax (graph TD) for the tree.
// The root renders as a circle, leaves as stadiums, everything else as
// rectangles. Nodes appear in display order; edges follow child insertion
// order, so shared children show one box with multiple incoming arrows.
func GenerateMermaid[T any](tree *story.Tree[T]) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	root, hasRoot := tree.Root()

	for _, id := range tree.IDs() {
		node, ok := tree.Find(id)
		if !ok {
			continue
		}
		safeID := sanitizeMermaidID(id)

		opener, closer := "[", "]"
		switch {
		case hasRoot && node == root:
			opener, closer = "((", "))"
		case node.IsLeaf():
			opener, closer = "([", "])"
		}

		label := shorten(tree.Render(node))
		if label == "" {
			label = id
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(label), closer))

		for _, child := range node.Children() {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(child.ID)))
		}
	}

	return sb.String()
}

func shorten(s string) string {
	if len(s) <= maxLabelLen {
		return s
	}
	return strings.TrimSpace(s[:maxLabelLen-3]) + "..."
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
