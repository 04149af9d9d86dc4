package story_test

import (
	"testing"

	"github.com/aretw0/fabula/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_SetRoot_CreatesAndRepoints(t *testing.T) {
	tree := story.New[string]()

	tree.SetRoot("1", "Start")
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "1", root.ID)
	assert.Equal(t, "Start", root.Data)

	// Repointing keeps the old root in the registry.
	tree.SetRoot("2", "Other start")
	root, ok = tree.Root()
	require.True(t, ok)
	assert.Equal(t, "2", root.ID)

	old, ok := tree.Find("1")
	require.True(t, ok)
	assert.Equal(t, "Start", old.Data)
	assert.Equal(t, 2, tree.Len())
}

func TestTree_SetRoot_OverwritesExistingPayload(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "2", "Go left")

	// "1" was created as a placeholder parent with a zero payload.
	parent, ok := tree.Find("1")
	require.True(t, ok)
	assert.Equal(t, "", parent.Data)

	tree.SetRoot("1", "Start")

	// Same instance, updated in place: existing edges observe the new payload.
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Same(t, parent, root)
	assert.Equal(t, "Start", parent.Data)
}

func TestTree_AddEdge_FirstWriterWinsForChild(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "2", "Go left")
	tree.AddEdge("3", "2", "A different label")

	child, ok := tree.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Go left", child.Data)
}

func TestTree_AddEdge_NoDuplicateChildReference(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "2", "Go left")
	tree.AddEdge("1", "2", "Go left")
	tree.AddEdge("1", "2", "Still go left")

	parent, ok := tree.Find("1")
	require.True(t, ok)
	assert.Len(t, parent.Children(), 1)
}

func TestTree_AddEdge_SelfLoopPermitted(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "1", "Loop forever")

	node, ok := tree.Find("1")
	require.True(t, ok)
	require.Len(t, node.Children(), 1)
	assert.Same(t, node, node.Children()[0])
	assert.Equal(t, 1, tree.Len())
}

func TestTree_DiamondSharesOneInstance(t *testing.T) {
	tree := story.New[string]()
	tree.SetRoot("1", "Start")
	tree.AddEdge("1", "2", "Left")
	tree.AddEdge("1", "3", "Right")
	tree.AddEdge("2", "4", "Meet")
	tree.AddEdge("3", "4", "Meet again")

	left, _ := tree.Find("2")
	right, _ := tree.Find("3")
	require.Len(t, left.Children(), 1)
	require.Len(t, right.Children(), 1)

	// Both parents borrow the same registry-owned instance; releasing the
	// tree releases node "4" exactly once.
	assert.Same(t, left.Children()[0], right.Children()[0])
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, "Meet", left.Children()[0].Data)
}

func TestTree_Find_Missing(t *testing.T) {
	tree := story.New[string]()
	node, ok := tree.Find("missing")
	assert.False(t, ok)
	assert.Nil(t, node)
}

func TestTree_ChildOrderIsInsertionOrder(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "9", "nine")
	tree.AddEdge("1", "3", "three")
	tree.AddEdge("1", "7", "seven")

	parent, _ := tree.Find("1")
	got := make([]string, 0, 3)
	for _, c := range parent.Children() {
		got = append(got, c.ID)
	}
	assert.Equal(t, []string{"9", "3", "7"}, got)
}

func TestTree_GenericPayload(t *testing.T) {
	type beat struct {
		Title string
	}
	tree := story.New[beat]()
	tree.AddEdge("1", "2", beat{Title: "cave"})

	parent, ok := tree.Find("1")
	require.True(t, ok)
	assert.Equal(t, beat{}, parent.Data)

	child, ok := tree.Find("2")
	require.True(t, ok)
	assert.Equal(t, "cave", child.Data.Title)
}
