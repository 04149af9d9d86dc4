package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve the story over a read-only HTTP API",
	Long:  `Loads the story graph and exposes it as JSON (GET /nodes, GET /nodes/{id}) together with /healthz and prometheus /metrics.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		if err := cli.RunServe(optionsFrom(cmd, args), port); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
