package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/fabula/pkg/story"
	"github.com/google/uuid"
)

// Phase identifies the traversal state machine's current state.
type Phase string

const (
	// PhaseNoRoot is the terminal, non-interactive outcome of starting a
	// session on a tree with no designated root.
	PhaseNoRoot Phase = "no_root"
	// PhasePresenting renders the current node and its options.
	PhasePresenting Phase = "presenting"
	// PhaseAwaitingInput blocks on one line of user input.
	PhaseAwaitingInput Phase = "awaiting_input"
	// PhaseEnded is the terminal state after a leaf or end-of-input.
	PhaseEnded Phase = "ended"
)

// InvalidKind classifies a rejected input line.
type InvalidKind string

const (
	InvalidEmpty      InvalidKind = "empty"
	InvalidNotANumber InvalidKind = "not_a_number"
	InvalidOutOfRange InvalidKind = "out_of_range"
)

// Hooks expose session lifecycle events to the host, in the spirit of
// observability hooks: wire them to logs or metrics as needed. All fields are
// optional.
type Hooks struct {
	OnNodeEnter    func(nodeID string)
	OnChoice       func(nodeID string, choice int)
	OnInvalidInput func(nodeID string, kind InvalidKind)
}

// Session walks a story tree interactively. It is single-threaded and blocks
// on each line read; not safe for concurrent use.
type Session[T any] struct {
	tree   *story.Tree[T]
	reader *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	hooks  Hooks
	id     string

	pendingErr error
}

// Option configures a Session.
type Option[T any] func(*Session[T])

// WithInput sets the input stream (default os.Stdin).
func WithInput[T any](r io.Reader) Option[T] {
	return func(s *Session[T]) {
		s.reader = bufio.NewReader(r)
	}
}

// WithOutput sets the output stream (default os.Stdout).
func WithOutput[T any](w io.Writer) Option[T] {
	return func(s *Session[T]) {
		s.out = w
	}
}

// WithLogger sets a structured logger for session diagnostics. Game text
// always goes to the output stream, never the logger.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Session[T]) {
		s.logger = logger
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks[T any](h Hooks) Option[T] {
	return func(s *Session[T]) {
		s.hooks = h
	}
}

// New creates a session over the given tree. Each session gets a fresh id
// used in logs and metrics labels.
func New[T any](tree *story.Tree[T], opts ...Option[T]) *Session[T] {
	s := &Session[T]{
		tree:   tree,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		id:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session[T]) ID() string {
	return s.id
}

// Run executes the session until a terminal phase is reached and returns it.
// Cancelling ctx is treated like end-of-input: the session terminates
// gracefully after the current read. Run never returns an error; malformed
// input is recovered locally and read failure is a defined termination.
func (s *Session[T]) Run(ctx context.Context) Phase {
	root, ok := s.tree.Root()
	if !ok {
		fmt.Fprintln(s.out, "No root node. Cannot play game.")
		s.logger.Debug("session refused", "session_id", s.id, "reason", "no root")
		return PhaseNoRoot
	}

	s.logger.Debug("session started", "session_id", s.id, "root", root.ID)

	fmt.Fprintln(s.out, "===== Begin Adventure =====")
	fmt.Fprintln(s.out)

	current := root
	phase := PhasePresenting
	for phase != PhaseEnded {
		switch phase {
		case PhasePresenting:
			phase = s.present(current)
		case PhaseAwaitingInput:
			current, phase = s.awaitChoice(ctx, current)
		}
	}

	fmt.Fprintln(s.out, "===== Adventure Complete =====")
	s.logger.Debug("session ended", "session_id", s.id, "node", current.ID)
	return PhaseEnded
}

// present renders the current node. Leaves end the session; otherwise the
// numbered option menu is shown and the session waits for input.
func (s *Session[T]) present(node *story.Node[T]) Phase {
	if s.hooks.OnNodeEnter != nil {
		s.hooks.OnNodeEnter(node.ID)
	}

	fmt.Fprintln(s.out, s.tree.Render(node))

	if node.IsLeaf() {
		fmt.Fprintln(s.out, "There are no further paths.")
		fmt.Fprintln(s.out, "Your journey ends here.")
		fmt.Fprintln(s.out)
		return PhaseEnded
	}

	fmt.Fprintln(s.out, "Choose your next action:")
	for i, child := range node.Children() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, s.tree.Render(child))
	}
	return PhaseAwaitingInput
}

// awaitChoice reads lines until one resolves to a valid child index or the
// input stream ends. Each invalid line re-prompts without consuming state.
func (s *Session[T]) awaitChoice(ctx context.Context, node *story.Node[T]) (*story.Node[T], Phase) {
	children := node.Children()

	for {
		fmt.Fprint(s.out, "Selection: ")

		line, err := s.readLine(ctx)
		if err != nil {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Input error or EOF. Ending adventure.")
			s.logger.Debug("input closed", "session_id", s.id, "err", err)
			return node, PhaseEnded
		}

		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(s.out, "Please enter a number corresponding to your choice.")
			s.rejected(node.ID, InvalidEmpty)
			continue
		}

		if !allDigits(line) {
			fmt.Fprintln(s.out, "Invalid selection. Please enter a number.")
			s.rejected(node.ID, InvalidNotANumber)
			continue
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			// Digit string too large to represent.
			fmt.Fprintln(s.out, "Invalid selection. Please enter a valid number.")
			s.rejected(node.ID, InvalidOutOfRange)
			continue
		}

		if choice < 1 || choice > len(children) {
			fmt.Fprintln(s.out, "Choice out of range. Please select a valid option.")
			s.rejected(node.ID, InvalidOutOfRange)
			continue
		}

		if s.hooks.OnChoice != nil {
			s.hooks.OnChoice(node.ID, choice)
		}
		fmt.Fprintln(s.out)
		return children[choice-1], PhasePresenting
	}
}

// readLine blocks for one line of input. A final line without a trailing
// newline is delivered before the EOF is reported on the next call.
func (s *Session[T]) readLine(ctx context.Context) (string, error) {
	if s.pendingErr != nil {
		return "", s.pendingErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", err
		}
		s.pendingErr = err
	}
	return line, nil
}

func (s *Session[T]) rejected(nodeID string, kind InvalidKind) {
	s.logger.Debug("input rejected", "session_id", s.id, "node", nodeID, "kind", string(kind))
	if s.hooks.OnInvalidInput != nil {
		s.hooks.OnInvalidInput(nodeID, kind)
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
