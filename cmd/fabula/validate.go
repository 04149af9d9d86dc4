package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the story for authoring mistakes",
	Long:  `Loads the story graph and reports a missing root and any nodes unreachable from it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(optionsFrom(cmd, args)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
