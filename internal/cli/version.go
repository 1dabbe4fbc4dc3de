package cli

import (
	"fmt"

	"github.com/jakoblorz/best-practices-hub/internal/models"
	"github.com/jakoblorz/best-practices-hub/internal/projectinfo"
	"github.com/spf13/cobra"
)

// VersionCommand handles the version command
type VersionCommand struct {
	provider projectinfo.Provider
}

// NewVersionCommand creates a new version command
func NewVersionCommand(provider projectinfo.Provider) *cobra.Command {
	cmd := &VersionCommand{provider: provider}

	cobraCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the project version",
		Long:  `Prints the project name and its version tag, e.g. "python-best-practices-hub v1.0.0".`,
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("python", false, "Also print the minimum supported Python version")

	return cobraCmd
}

// Run executes the version command
func (c *VersionCommand) Run(cmd *cobra.Command, args []string) error {
	showPython, _ := cmd.Flags().GetBool("python")

	info := c.provider.Info()
	version, err := models.ParseVersion(info.Version)
	if err != nil {
		return fmt.Errorf("invalid project version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", info.Name, version.Tag())

	if showPython {
		minPython, err := info.MinimumPython()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "python >= %s\n", minPython.String())
	}

	return nil
}
