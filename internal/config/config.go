// Package config provides configuration loading and management.
package config

// DefaultWorkers is the default number of modules scanned in parallel.
const DefaultWorkers = 4

// DefaultOutput is the default output format.
const DefaultOutput = "table"

// ScanConfig contains catalog scan settings.
type ScanConfig struct {
	// WithLibrary includes library sources in each module scope.
	// Env: RESTSCOPE_SCAN_WITHLIBRARY, Default: false
	WithLibrary bool `json:"withLibrary,omitempty"`

	// IncludeEmpty keeps modules without endpoints in the catalog.
	// Env: RESTSCOPE_SCAN_INCLUDEEMPTY, Default: false
	IncludeEmpty bool `json:"includeEmpty,omitempty"`

	// LibraryPaths are extra source roots treated as library scope. Relative
	// paths are resolved against the scanned project root.
	// Env: RESTSCOPE_SCAN_LIBRARYPATHS (comma separated)
	LibraryPaths []string `json:"libraryPaths,omitempty" validate:"dive,required"`

	// Workers bounds the number of modules scanned in parallel.
	// Env: RESTSCOPE_SCAN_WORKERS, Default: 4
	Workers int `json:"workers,omitempty" validate:"omitempty,min=1,max=64"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the restscope configuration file.
type Config struct {
	// Scan contains catalog scan settings.
	Scan ScanConfig `json:"scan,omitempty"`

	// Output is the default output format.
	// Env: RESTSCOPE_OUTPUT, Default: table
	Output string `json:"output,omitempty" validate:"omitempty,oneof=table yaml json tree"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `restscope config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Workers: DefaultWorkers,
		},
		Output: DefaultOutput,
	}
}

// DefaultConfigTemplate is written by `restscope config init`.
const DefaultConfigTemplate = `# restscope configuration
#
# Every value can be overridden by a RESTSCOPE_* environment variable
# (for example RESTSCOPE_SCAN_WORKERS) or by the matching command flag.

scan:
  # Include library sources in each module scope.
  withLibrary: false
  # List modules without endpoints.
  includeEmpty: false
  # Extra source roots treated as library scope.
  libraryPaths: []
  # Modules scanned in parallel (1-64).
  workers: 4

# Default output format: table, yaml, json or tree.
output: table

log:
  timestamps: true
`
