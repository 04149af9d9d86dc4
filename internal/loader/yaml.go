package loader

import (
	"fmt"

	"github.com/aretw0/fabula/pkg/story"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// yamlStory is the YAML story document shape.
type yamlStory struct {
	Root  *yamlRoot  `mapstructure:"root"`
	Edges []yamlEdge `mapstructure:"edges"`
}

type yamlRoot struct {
	ID   string `mapstructure:"id"`
	Text string `mapstructure:"text"`
}

type yamlEdge struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
	Text string `mapstructure:"text"`
}

// ParseYAML builds a tree from the YAML format:
//
//	root:
//	  id: "1"
//	  text: You wake up in a cave.
//	edges:
//	  - from: "1"
//	    to: "2"
//	    text: Go deeper
//
// The document is decoded weakly, so unquoted numeric ids (from: 1) decode
// into the string ids the registry keys on.
func ParseYAML(data []byte, opts ...story.Option[string]) (*story.Tree[string], error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse story yaml: %w", err)
	}

	var doc yamlStory
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build yaml decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid story document: %w", err)
	}

	tree := story.New[string](opts...)
	if doc.Root != nil {
		if doc.Root.ID == "" {
			return nil, fmt.Errorf("root is missing an id")
		}
		tree.SetRoot(doc.Root.ID, doc.Root.Text)
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %d: both from and to are required", i)
		}
		tree.AddEdge(e.From, e.To, e.Text)
	}
	return tree, nil
}
