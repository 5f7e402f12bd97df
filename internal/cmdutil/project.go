package cmdutil

import (
	"context"
	"fmt"

	"github.com/restscope/cli/internal/catalog"
	"github.com/restscope/cli/internal/config"
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/output"
	"github.com/restscope/cli/internal/workspace"
)

// NewAdvisor returns an advisor that warns once per missing capability.
func NewAdvisor() host.Advisor {
	return host.NewOnceAdvisor(host.AdvisorFunc(func(c host.Capability, message string) {
		output.Warn(message, "capability", c)
	}))
}

// OpenProject opens the project at path with the resolved scan settings.
func OpenProject(path string, scan *config.ResolvedScan, advisor host.Advisor) (*workspace.Workspace, error) {
	opts := []workspace.Option{
		workspace.WithAdvisor(advisor),
		workspace.WithLogger(output.Logger().WithPrefix("workspace")),
	}
	if scan != nil && len(scan.LibraryPaths) > 0 {
		opts = append(opts, workspace.WithLibraryPaths(scan.LibraryPaths...))
	}
	return workspace.Open(path, opts...)
}

// NewBuilder creates a catalog builder for ws with the resolved scan settings.
func NewBuilder(ws *workspace.Workspace, scan *config.ResolvedScan, advisor host.Advisor) *catalog.Builder {
	opts := []catalog.Option{
		catalog.WithAdvisor(advisor),
		catalog.WithLogger(output.Logger().WithPrefix("catalog")),
		catalog.WithModuleLogger(output.ModuleLogger),
	}
	if scan != nil {
		opts = append(opts,
			catalog.WithLibraryScope(scan.WithLibrary),
			catalog.WithWorkers(scan.Workers),
		)
	}
	return catalog.NewBuilder(ws, opts...)
}

// BuildCatalogOpts holds the inputs for BuildCatalog.
type BuildCatalogOpts struct {
	// Path is the project root.
	Path string
	// Scan is the resolved scan configuration.
	Scan *config.ResolvedScan
}

// BuildCatalog opens the project and builds its endpoint catalog behind a
// spinner. It returns the workspace so callers can name the project.
func BuildCatalog(ctx context.Context, opts BuildCatalogOpts) (*workspace.Workspace, *catalog.Catalog, error) {
	if opts.Scan == nil {
		return nil, nil, fmt.Errorf("scan configuration not resolved")
	}
	config.LogResolvedValues(opts.Scan.Values)

	advisor := NewAdvisor()
	ws, err := OpenProject(opts.Path, opts.Scan, advisor)
	if err != nil {
		return nil, nil, err
	}

	output.Debug("scanning project",
		"root", ws.Root(),
		"modules", len(ws.Modules()),
		"workers", opts.Scan.Workers,
		"withLibrary", opts.Scan.WithLibrary,
	)

	var cat *catalog.Catalog
	err = output.RunWithSpinner(ctx, func() error {
		cat = NewBuilder(ws, opts.Scan, advisor).Build(ws, opts.Scan.IncludeEmpty)
		return nil
	}, output.WithTitle(fmt.Sprintf("Scanning %s...", ws.Name())))
	if err != nil {
		return nil, nil, err
	}

	output.Debug("catalog built", "modules", cat.Len(), "endpoints", cat.Total())
	return ws, cat, nil
}
