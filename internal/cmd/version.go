package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/output"
	"github.com/restscope/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show restscope version information.

Displays:
  - restscope version, commit, and build date
  - Go version and tree-sitter binding version`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if format := cfg.Format(); format.IsStructured() {
				return output.WriteDocument(c.OutOrStdout(), format, info)
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), info.String())
			return err
		},
	}
}
