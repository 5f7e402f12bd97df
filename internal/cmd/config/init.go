package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/config"
	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the restscope configuration file with default values.

The file is created at ~/.restscope/config.yaml unless --config or
RESTSCOPE_CONFIG names another location.

Examples:
  # Initialize configuration
  restscope config init

  # Overwrite existing configuration
  restscope config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	configPath, err := config.ExpandPath(cfg.ConfigPath())
	if err != nil || configPath == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config file path")
	}

	exists, err := config.FileExists(configPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	// Directories 0700, files 0600.
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create config directory", filepath.Dir(configPath), "")
	}
	if err := os.WriteFile(configPath, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return oerrors.NewPermissionError("could not write config file", configPath, "")
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(configPath)))
	fmt.Fprintln(out, "Validate with: restscope config vet")
	return nil
}
