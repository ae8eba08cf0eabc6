package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/models"
	"codeberg.org/snonux/polyglot/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle --gui flag
	if flags.GUIMode {
		return proc.RunGUIMode()
	}

	// Handle batch translation
	if flags.BatchFile != "" {
		return proc.ProcessBatch()
	}

	// Translate a single utterance from the command line
	if len(args) > 0 {
		return proc.TranslateText(args[0])
	}

	// No input provided - launch GUI mode by default
	return proc.RunGUIMode()
}
