// Package loader parses story source files into the registry-building
// operations the core accepts: designate-root (id, text) and add-edge
// (parent, child, text). Two formats are supported, picked by extension:
// a pipe-separated text format and a YAML format.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/fabula/pkg/story"
)

// Load reads a story file and builds its tree. Files ending in .yaml or .yml
// use the YAML format; everything else is parsed as the text format. Tree
// options (e.g. a custom renderer) pass through to the built tree.
func Load(path string, opts ...story.Option[string]) (*story.Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, opts...)
	default:
		return Parse(strings.NewReader(string(data)), opts...)
	}
}

// Parse builds a tree from the text format. Blank lines and lines starting
// with '#' are skipped. A line with two pipe-separated fields designates the
// root ("id|text"); three fields add an edge ("parent|child|text"). Operations
// apply in file order, so a later root line repoints the root.
func Parse(r io.Reader, opts ...story.Option[string]) (*story.Tree[string], error) {
	tree := story.New[string](opts...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		switch len(fields) {
		case 2:
			id := strings.TrimSpace(fields[0])
			if id == "" {
				return nil, fmt.Errorf("line %d: empty node id", lineNo)
			}
			tree.SetRoot(id, fields[1])
		case 3:
			parent := strings.TrimSpace(fields[0])
			child := strings.TrimSpace(fields[1])
			if parent == "" || child == "" {
				return nil, fmt.Errorf("line %d: empty node id", lineNo)
			}
			tree.AddEdge(parent, child, fields[2])
		default:
			return nil, fmt.Errorf("line %d: expected 2 or 3 fields, got %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan story source: %w", err)
	}

	// A source without a root line is tolerated here: the session reports the
	// missing root itself and the validate command wants the tree regardless.
	return tree, nil
}
