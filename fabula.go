package fabula

import (
	"context"
	"io"

	"github.com/aretw0/fabula/internal/loader"
	"github.com/aretw0/fabula/pkg/session"
	"github.com/aretw0/fabula/pkg/story"
)

// Version is the release version, overridable at build time.
var Version = "0.1.0"

// Load reads a story source file (text or YAML, picked by extension) and
// builds its tree.
func Load(path string, opts ...story.Option[string]) (*story.Tree[string], error) {
	return loader.Load(path, opts...)
}

// Play runs one interactive session over the tree, reading choices from in
// and writing the story to out. It returns the terminal phase: PhaseNoRoot
// when the tree has no designated root, PhaseEnded otherwise.
func Play(ctx context.Context, tree *story.Tree[string], in io.Reader, out io.Writer, opts ...session.Option[string]) session.Phase {
	opts = append([]session.Option[string]{
		session.WithInput[string](in),
		session.WithOutput[string](out),
	}, opts...)
	return session.New(tree, opts...).Run(ctx)
}
