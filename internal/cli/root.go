package cli

import (
	"fmt"

	"github.com/jakoblorz/best-practices-hub/internal/projectinfo"
	"github.com/jakoblorz/best-practices-hub/internal/render"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(provider projectinfo.Provider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hub",
		Short: "Show information about the " + projectinfo.Title,
		Long: `Prints the welcome message and the project metadata.

Running hub without a subcommand prints the greeting followed by
one line per metadata field.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `hub info` in text format when no subcommand is provided.
			return (&InfoCommand{provider: provider}).print(cmd, render.FormatText)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(NewInfoCommand(provider))
	rootCmd.AddCommand(NewGreetingCommand(provider))
	rootCmd.AddCommand(NewVersionCommand(provider))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand(projectinfo.NewStaticProvider())

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
