package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula/internal/cli"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print every node in the story",
	Long:  `Loads the story graph and lists every node with its text and direct children, numeric ids first in ascending order.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunPrint(optionsFrom(cmd, args)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
