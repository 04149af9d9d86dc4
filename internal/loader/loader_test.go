package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/fabula/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TextFormat(t *testing.T) {
	src := `# a tiny adventure
1|You wake up in a cave.

1|2|Go deeper
1|3|Climb toward the light
2|4|Follow the stream
3|4|Slide back down
`
	tree, err := loader.Parse(strings.NewReader(src))
	require.NoError(t, err)

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "1", root.ID)
	assert.Equal(t, "You wake up in a cave.", root.Data)
	assert.Equal(t, 4, tree.Len())

	deeper, ok := tree.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Go deeper", deeper.Data)

	// Diamond: both branches share one instance of node 4.
	left, _ := tree.Find("2")
	right, _ := tree.Find("3")
	require.Len(t, left.Children(), 1)
	require.Len(t, right.Children(), 1)
	assert.Same(t, left.Children()[0], right.Children()[0])
}

func TestParse_EdgeBeforeRootConverges(t *testing.T) {
	src := "1|2|Go left\n1|The real beginning\n"
	tree, err := loader.Parse(strings.NewReader(src))
	require.NoError(t, err)

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "1", root.ID)
	assert.Equal(t, "The real beginning", root.Data)
	require.Len(t, root.Children(), 1)
	assert.Equal(t, "2", root.Children()[0].ID)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"too many fields", "1|2|3|4\n"},
		{"single field", "justtext\n"},
		{"empty root id", " |text\n"},
		{"empty edge id", "1| |text\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParse_NoRootLine(t *testing.T) {
	tree, err := loader.Parse(strings.NewReader("1|2|Go on\n"))
	require.NoError(t, err)
	_, ok := tree.Root()
	assert.False(t, ok)
	assert.Equal(t, 2, tree.Len())
}

func TestParseYAML(t *testing.T) {
	src := `
root:
  id: 1
  text: You wake up in a cave.
edges:
  - from: 1
    to: 2
    text: Go deeper
  - from: 1
    to: exit
    text: Climb toward the light
`
	tree, err := loader.ParseYAML([]byte(src))
	require.NoError(t, err)

	// Unquoted numeric ids decode weakly into strings.
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "1", root.ID)
	require.Len(t, root.Children(), 2)
	assert.Equal(t, "2", root.Children()[0].ID)
	assert.Equal(t, "exit", root.Children()[1].ID)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := loader.ParseYAML([]byte("root: [not, a, mapping]"))
	assert.Error(t, err)

	_, err = loader.ParseYAML([]byte("edges:\n  - to: 2\n    text: dangling\n"))
	assert.Error(t, err)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(txt, []byte("1|Start\n1|2|Onward\n"), 0o644))
	tree, err := loader.Load(txt)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())

	yml := filepath.Join(dir, "story.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("root:\n  id: a\n  text: hi\n"), 0o644))
	tree, err = loader.Load(yml)
	require.NoError(t, err)
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "a", root.ID)

	_, err = loader.Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
