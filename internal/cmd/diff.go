package cmd

import (
	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/cmdutil"
	"github.com/restscope/cli/internal/config"
	"github.com/restscope/cli/internal/output"
	"github.com/restscope/cli/internal/snapshot"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ScanFlags

	c := &cobra.Command{
		Use:   "diff SNAPSHOT [path]",
		Short: "Compare a saved snapshot with the current endpoints",
		Long: `Compare a snapshot written by 'restscope scan -o yaml' with the endpoints
of the project at path (default: current directory).

Modules are reported as added, removed or modified. Modified modules show
a YAML-aware diff of their endpoint lists. The exit code is 0 whether or
not differences exist.

Examples:
  restscope scan ./shop -o yaml > before.yaml
  # ... change code ...
  restscope diff before.yaml ./shop`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			before, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			scan, err := config.ResolveScan(cmdutil.ResolveOptions(c, nil, &sf, cfg.Config))
			if err != nil {
				return err
			}

			ws, cat, err := cmdutil.BuildCatalog(c.Context(), cmdutil.BuildCatalogOpts{
				Path: cmdutil.ResolveProjectPath(args[1:]),
				Scan: scan,
			})
			if err != nil {
				return err
			}

			result, err := snapshot.Diff(before, snapshot.FromCatalog(ws.Name(), cat), output.UseColor())
			if err != nil {
				return err
			}
			return cmdutil.WriteDiff(c.OutOrStdout(), result)
		},
	}

	sf.AddTo(c)

	return c
}
