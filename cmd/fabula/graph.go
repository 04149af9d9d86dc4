package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula"
	"github.com/aretw0/fabula/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the story graph visualization",
	Long:  `Loads the story graph and outputs a Mermaid diagram (graph TD) of its structure.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFrom(cmd, args)

		tree, err := fabula.Load(opts.StoryPath)
		if err != nil {
			fmt.Printf("Error loading story: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(tree))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
