package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/fabula/internal/loader"
	"github.com/aretw0/fabula/internal/metrics"
	"github.com/aretw0/fabula/internal/presentation/tui"
	"github.com/aretw0/fabula/pkg/session"
	"github.com/aretw0/fabula/pkg/story"
)

// RunOptions carries flag values shared by the commands.
type RunOptions struct {
	StoryPath string
	Debug     bool
	Render    bool
	Version   string
}

// RunSession loads the story file and runs one interactive session.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if isTerminal() {
		tui.PrintBanner(opts.Version)
	}

	tree, err := loadTree(opts)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	s := session.New(tree,
		session.WithLogger[string](logger),
		session.WithHooks[string](metricsHooks()),
	)

	metrics.SessionsStarted.Inc()
	logger.Debug("starting session", "session_id", s.ID(), "story", opts.StoryPath)

	phase := s.Run(sigCtx)
	logger.Debug("session finished", "session_id", s.ID(), "phase", string(phase))
	if sig := sigCtx.Signal(); sig != nil {
		logger.Debug("terminated by signal", "signal", sig.String())
	}
	return nil
}

// RunPrint loads the story file and prints the full node listing.
func RunPrint(opts RunOptions) error {
	tree, err := loadTree(opts)
	if err != nil {
		return err
	}
	tree.Print(os.Stdout)
	return nil
}

// loadTree builds the story tree, applying the markdown renderer when
// requested and attached to a terminal.
func loadTree(opts RunOptions) (*story.Tree[string], error) {
	var treeOpts []story.Option[string]
	if opts.Render && isTerminal() {
		treeOpts = append(treeOpts, story.WithRenderer(story.Renderer[string](tui.NewMarkdownRenderer())))
	}

	tree, err := loader.Load(opts.StoryPath, treeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load story %q: %w", opts.StoryPath, err)
	}
	return tree, nil
}

func metricsHooks() session.Hooks {
	return session.Hooks{
		OnNodeEnter: func(nodeID string) {
			metrics.NodesVisited.WithLabelValues(nodeID).Inc()
		},
		OnChoice: func(string, int) {
			metrics.ChoicesMade.Inc()
		},
		OnInvalidInput: func(_ string, kind session.InvalidKind) {
			metrics.InvalidInputs.WithLabelValues(string(kind)).Inc()
		},
	}
}
