// Package cmdutil provides shared command utilities for the scanning commands.
// It centralizes flag group management, catalog build orchestration and
// output formatting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/config"
)

// ScopeFlags holds flags that shape each module's scope
// (scan, settings, diff).
type ScopeFlags struct {
	WithLibrary  bool
	LibraryPaths []string
}

// AddTo registers the scope flags on the given cobra command.
func (f *ScopeFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.WithLibrary, "with-library", false,
		"Include library sources in each module scope")
	cmd.Flags().StringArrayVar(&f.LibraryPaths, "library-path", nil,
		"Extra library source root, relative to the project (can be repeated)")
}

// ScanFlags holds flags for commands that build a catalog (scan, diff).
type ScanFlags struct {
	ScopeFlags
	IncludeEmpty bool
	Workers      int
}

// AddTo registers the scope and scan flags on the given cobra command.
func (f *ScanFlags) AddTo(cmd *cobra.Command) {
	f.ScopeFlags.AddTo(cmd)
	cmd.Flags().BoolVar(&f.IncludeEmpty, "include-empty", false,
		"List modules without endpoints")
	cmd.Flags().IntVar(&f.Workers, "workers", config.DefaultWorkers,
		"Number of modules scanned in parallel (1-64)")
}

// ResolveOptions converts the flags explicitly set on cmd into resolver
// options. Flags left at their defaults do not shadow env or config values.
func ResolveOptions(cmd *cobra.Command, scope *ScopeFlags, scan *ScanFlags, cfg *config.Config) config.ResolveScanOptions {
	opts := config.ResolveScanOptions{Config: cfg}
	flags := cmd.Flags()

	if scan != nil {
		scope = &scan.ScopeFlags
		if flags.Changed("include-empty") {
			opts.IncludeEmptyFlag = &scan.IncludeEmpty
		}
		if flags.Changed("workers") {
			opts.WorkersFlag = &scan.Workers
		}
	}
	if scope != nil {
		if flags.Changed("with-library") {
			opts.WithLibraryFlag = &scope.WithLibrary
		}
		if flags.Changed("library-path") {
			opts.LibraryPathsFlag = scope.LibraryPaths
		}
	}
	return opts
}

// ResolveProjectPath returns the project path from command args,
// defaulting to the current directory.
func ResolveProjectPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
