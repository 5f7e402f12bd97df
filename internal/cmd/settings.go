package cmd

import (
	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/cmdutil"
	"github.com/restscope/cli/internal/config"
)

// NewSettingsCmd creates the settings command.
func NewSettingsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ScopeFlags

	c := &cobra.Command{
		Use:   "settings [path]",
		Short: "Show the server settings of each module",
		Long: `Show the protocol, port and context path resolved for each module of the
project at path, and the configuration file they were read from.

application.properties is preferred over application.yml. Missing or
malformed values fall back to http, port 8080 and no context path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			scan, err := config.ResolveScan(cmdutil.ResolveOptions(c, &sf, nil, cfg.Config))
			if err != nil {
				return err
			}
			config.LogResolvedValues(scan.Values)

			advisor := cmdutil.NewAdvisor()
			ws, err := cmdutil.OpenProject(cmdutil.ResolveProjectPath(args), scan, advisor)
			if err != nil {
				return err
			}

			settings := cmdutil.NewBuilder(ws, scan, advisor).ModuleSettings(ws)
			return cmdutil.WriteSettings(c.OutOrStdout(), cfg.Format(), settings)
		},
	}

	sf.AddTo(c)

	return c
}
