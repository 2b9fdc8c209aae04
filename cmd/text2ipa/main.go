package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/text2ipa/internal/cli"
	"codeberg.org/snonux/text2ipa/internal/processor"
)

func main() {
	// Load a local .env when present; real environment variables win.
	godotenv.Load()

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
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, processor.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Track explicit flags, so --text "" still selects text mode.
	flags.HasText = cmd.Flags().Changed("text")
	flags.HasFile = cmd.Flags().Changed("file")

	// No input at all is a usage error: help on stderr, exit code 2.
	if !flags.HasText && !flags.HasFile && flags.CompileDict == "" {
		cmd.SetOut(os.Stderr)
		cmd.Help()
		return processor.ErrUsage
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	return proc.Run(cmd.Context())
}
