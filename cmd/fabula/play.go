package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula"
	"github.com/aretw0/fabula/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play the story interactively",
	Long:  `Loads the story graph and walks it from the root, prompting for a numbered choice at every branch until a leaf is reached.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFrom(cmd, args)
		opts.Render, _ = cmd.Flags().GetBool("render")

		if err := cli.RunSession(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// optionsFrom assembles the shared RunOptions from flags and the optional
// positional story path.
func optionsFrom(cmd *cobra.Command, args []string) cli.RunOptions {
	storyPath, _ := cmd.Flags().GetString("story")
	if !cmd.Flags().Changed("story") && len(args) > 0 {
		storyPath = args[0]
	}
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{
		StoryPath: storyPath,
		Debug:     debug,
		Version:   fabula.Version,
	}
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("render", false, "Render story text as markdown (terminal only)")

	// Make 'play' the default when no subcommand is given.
	rootCmd.Run = playCmd.Run
	rootCmd.Args = playCmd.Args
}
