// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/restscope/cli/internal/config"
	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by the root command and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file; empty when none was found.
	Config *config.Config

	// ConfigFound reports whether the config file existed.
	ConfigFound bool

	// Resolved holds the resolved global settings.
	Resolved *config.ResolvedConfig

	Verbose bool
}

// ConfigPath returns the resolved config file path.
func (g *GlobalConfig) ConfigPath() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.ConfigPath
}

// Format returns the resolved output format, table when unresolved.
func (g *GlobalConfig) Format() output.Format {
	if g == nil || g.Resolved == nil {
		return output.FormatTable
	}
	f, _ := output.ParseFormat(g.Resolved.Output)
	return f
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
