// Package version provides version information for the restscope CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// treeSitterModule is the parser runtime reported by `restscope version`.
const treeSitterModule = "github.com/smacker/go-tree-sitter"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// ParserVersion is the tree-sitter binding version, "unknown" when the
	// binary carries no module information.
	ParserVersion string `json:"parserVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		ParserVersion: dependencyVersion(treeSitterModule),
	}
}

// dependencyVersion looks up a module version in the embedded build info.
func dependencyVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("restscope version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  Parser:    tree-sitter %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.ParserVersion)
}
