package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fabula",
	Short: "Fabula is a branching-narrative story engine",
	Long:  `Fabula loads a story graph from a text or YAML file and plays it as an interactive adventure on the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("story", "story.txt", "Path to the story source file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
