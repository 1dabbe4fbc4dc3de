package cli

import (
	"fmt"

	"github.com/jakoblorz/best-practices-hub/internal/projectinfo"
	"github.com/spf13/cobra"
)

// NewGreetingCommand creates the greeting command
func NewGreetingCommand(provider projectinfo.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "greeting",
		Short: "Print the welcome message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), provider.Greeting())
			return err
		},
	}
}
