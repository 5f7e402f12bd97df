package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/config"
	"github.com/restscope/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the restscope configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML without unknown keys
  3. Values satisfy their constraints (workers 1-64, known output format)

The config path is resolved using precedence:
  --config flag > RESTSCOPE_CONFIG env > ~/.restscope/config.yaml

Examples:
  # Validate default configuration
  restscope config vet

  # Validate custom config path
  restscope config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			configPath := cfg.ConfigPath()
			output.Debug("validating config", "path", configPath)

			loaded, err := config.ValidateFile(configPath)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintln(out, output.FormatVetCheck("Config file found", configPath))
			fmt.Fprintln(out, output.FormatVetCheck("Schema valid", ""))
			fmt.Fprintln(out, output.FormatVetCheck("Scan workers", strconv.Itoa(workers(loaded))))
			return nil
		},
	}
}

func workers(cfg *config.Config) int {
	if cfg.Scan.Workers == 0 {
		return config.DefaultWorkers
	}
	return cfg.Scan.Workers
}
