package cmd

import (
	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/cmdutil"
	"github.com/restscope/cli/internal/config"
)

// NewScanCmd creates the scan command.
func NewScanCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ScanFlags

	c := &cobra.Command{
		Use:   "scan [path]",
		Short: "List the HTTP endpoints of a project",
		Long: `List every HTTP endpoint of the project at path (default: current directory).

Each module is scanned for JAX-RS resources first; modules without any fall
back to Spring MVC controllers. URLs use the module's server settings.

Examples:
  # Table of all endpoints
  restscope scan ./shop

  # Save a snapshot for a later 'restscope diff'
  restscope scan ./shop -o yaml > endpoints.yaml

  # Include shared library sources and list empty modules
  restscope scan ./shop --with-library --library-path ../shared/src --include-empty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runScan(c, args, cfg, &sf)
		},
	}

	sf.AddTo(c)

	return c
}

func runScan(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, sf *cmdutil.ScanFlags) error {
	scan, err := config.ResolveScan(cmdutil.ResolveOptions(c, nil, sf, cfg.Config))
	if err != nil {
		return err
	}

	ws, cat, err := cmdutil.BuildCatalog(c.Context(), cmdutil.BuildCatalogOpts{
		Path: cmdutil.ResolveProjectPath(args),
		Scan: scan,
	})
	if err != nil {
		return err
	}

	return cmdutil.WriteCatalog(c.OutOrStdout(), cfg.Format(), ws.Name(), cat)
}
