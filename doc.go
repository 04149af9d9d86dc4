/*
Package fabula is a generic story tree engine for text-based branching
narratives. A story is a directed graph of nodes (beats) connected by player
choices; the same node may hang under several parents, and one node is
designated as the starting point. An interactive session walks the graph from
the root to a leaf, one numbered choice at a time.

# Concept

The engine splits into two parts. The registry (pkg/story) owns every node by
unique id, builds parent-to-child links lazily so edges may reference ids
before they are defined, and prints a deterministic listing for diagnostics.
The traversal engine (pkg/session) is a console-loop state machine that
renders the current beat, validates the player's reply and moves forward;
malformed input re-prompts and end-of-input ends the session gracefully.

# Usage

	package main

	import (
		"context"
		"os"

		"github.com/aretw0/fabula"
		"github.com/aretw0/fabula/pkg/story"
	)

	func main() {
		tree := story.New[string]()
		tree.SetRoot("1", "You wake up in a cave.")
		tree.AddEdge("1", "2", "Go deeper")
		tree.AddEdge("1", "3", "Climb toward the light")

		fabula.Play(context.Background(), tree, os.Stdin, os.Stdout)
	}

The payload type is generic: any value renderable to text works, with
string payloads passing straight through. See pkg/story for the container
contract and pkg/session for the traversal state machine.
*/
package fabula
