package cli

import (
	"fmt"

	"github.com/jakoblorz/best-practices-hub/internal/projectinfo"
	"github.com/jakoblorz/best-practices-hub/internal/render"
	"github.com/spf13/cobra"
)

// InfoCommand handles the info command
type InfoCommand struct {
	provider projectinfo.Provider
}

// NewInfoCommand creates a new info command
func NewInfoCommand(provider projectinfo.Provider) *cobra.Command {
	cmd := &InfoCommand{provider: provider}

	cobraCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the greeting and project metadata",
		Long:  `Prints the greeting together with the project name, version, description and required Python version.`,
		Example: `  # Human-readable output
  hub info

  # Output JSON for scripting
  hub info --format json

  # Markdown with YAML front matter
  hub info --format markdown > PROJECT.md`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("format", "f", string(render.FormatText), "Output format: text, json, yaml or markdown")

	return cobraCmd
}

// Run executes the info command
func (c *InfoCommand) Run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	return c.print(cmd, format)
}

func (c *InfoCommand) print(cmd *cobra.Command, format render.Format) error {
	info := c.provider.Info()
	if err := info.Validate(); err != nil {
		return fmt.Errorf("invalid project info: %w", err)
	}

	if err := render.Write(cmd.OutOrStdout(), format, c.provider.Greeting(), info); err != nil {
		return fmt.Errorf("failed to write project info: %w", err)
	}

	return nil
}
