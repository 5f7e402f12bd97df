// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/restscope/cli/internal/cmd/config"
	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/config"
	"github.com/restscope/cli/internal/output"
)

// rootFlags holds the global flag values.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the restscope CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "restscope",
		Short: "Discover the HTTP endpoints of Java projects",
		Long: `restscope scans the modules of a Maven or Gradle project for JAX-RS and
Spring MVC request mappings and lists every endpoint with its absolute URL.

URLs are composed from each module's application.properties or
application.yml (server.port, server.ssl.enabled and
server.servlet.context-path).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: RESTSCOPE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: table, yaml, json, tree (env: RESTSCOPE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewScanCmd(cfg),
		NewSettingsCmd(cfg),
		NewURLCmd(cfg),
		NewDiffCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into cfg.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	// Verbose logging is needed while the config file is read.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})
	cfg.Verbose = flags.verbose

	pathValue, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return err
	}
	configPath, _ := pathValue.Value.(string)

	loaded, found, err := config.NewLoader().Load(configPath)
	if err != nil {
		// Commands that repair the config file must still run.
		output.Warn("ignoring unreadable config file", "path", configPath, "error", err)
		loaded, found = &config.Config{}, false
	}
	cfg.Config = loaded
	cfg.ConfigFound = found

	opts := config.ResolveAllOptions{
		ConfigFlag: flags.config,
		OutputFlag: flags.output,
		Config:     loaded,
	}
	if cmd.Flags().Changed("timestamps") {
		opts.TimestampsFlag = output.BoolPtr(flags.timestamps)
	}

	resolved, err := config.ResolveAll(opts)
	if err != nil && found {
		output.Warn("ignoring invalid config file", "path", configPath, "error", err)
		cfg.Config = &config.Config{}
		opts.Config = cfg.Config
		resolved, err = config.ResolveAll(opts)
	}
	if err != nil {
		return err
	}
	cfg.Resolved = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: resolved.Timestamps,
	})

	if flags.verbose {
		config.LogResolvedValues(resolved.Values)
		output.Debug("initializing CLI",
			"config", resolved.ConfigPath,
			"configFound", found,
			"output", resolved.Output,
		)
	}

	return nil
}
