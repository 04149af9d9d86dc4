// Package validator checks a loaded story tree for authoring mistakes that
// the permissive registry accepts: a missing root and nodes that can never be
// reached from it.
package validator

import (
	"github.com/aretw0/fabula/pkg/story"
)

// Report summarizes a validation crawl.
type Report struct {
	HasRoot     bool
	Reachable   int
	Unreachable []string
}

// OK reports whether the story is playable end to end.
func (r Report) OK() bool {
	return r.HasRoot && len(r.Unreachable) == 0
}

// Validate crawls the tree breadth-first from the root and reports every node
// id the walk cannot reach, in display order. Cycles are fine; each node is
// visited once.
func Validate[T any](tree *story.Tree[T]) Report {
	root, ok := tree.Root()
	if !ok {
		return Report{HasRoot: false, Unreachable: tree.IDs()}
	}

	visited := make(map[string]bool)
	queue := []*story.Node[T]{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if visited[node.ID] {
			continue
		}
		visited[node.ID] = true

		queue = append(queue, node.Children()...)
	}

	report := Report{HasRoot: true, Reachable: len(visited)}
	for _, id := range tree.IDs() {
		if !visited[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	return report
}
