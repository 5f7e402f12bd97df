package catalog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/restscope/cli/internal/appconfig"
	"github.com/restscope/cli/internal/dialect"
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/route"
)

// DefaultWorkers is the number of modules scanned concurrently.
const DefaultWorkers = 4

// Builder assembles catalogs from a host.
type Builder struct {
	host             host.Host
	scanners         []dialect.Scanner
	includeLibraries bool
	workers          int
	logger           *log.Logger
	moduleLogger     func(module string) *log.Logger
	advisor          host.Advisor
}

// Option configures a Builder.
type Option func(*Builder)

// WithScanners replaces the dialect scanners. Order is precedence: the first
// scanner with a non-empty result wins for a module.
func WithScanners(scanners ...dialect.Scanner) Option {
	return func(b *Builder) {
		b.scanners = scanners
	}
}

// WithLibraryScope includes library sources in every module scope.
func WithLibraryScope(include bool) Option {
	return func(b *Builder) {
		b.includeLibraries = include
	}
}

// WithWorkers bounds the number of modules scanned at once. Values below one
// fall back to DefaultWorkers.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithModuleLogger derives the logger used while a module is scanned. Without
// it the builder logger is used with a module key.
func WithModuleLogger(fn func(module string) *log.Logger) Option {
	return func(b *Builder) {
		b.moduleLogger = fn
	}
}

// WithAdvisor sets the sink for degraded-mode notices.
func WithAdvisor(a host.Advisor) Option {
	return func(b *Builder) {
		if a != nil {
			b.advisor = a
		}
	}
}

// NewBuilder creates a builder over h using the default dialects.
func NewBuilder(h host.Host, opts ...Option) *Builder {
	b := &Builder{
		host:    h,
		workers: DefaultWorkers,
		logger:  log.New(io.Discard),
		advisor: host.NopAdvisor,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.scanners == nil {
		b.scanners = dialect.Defaults(h)
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}
	return b
}

// moduleResult is the outcome of scanning one module.
type moduleResult struct {
	name      string
	endpoints []Endpoint
}

// Build scans every module of project and returns the catalog. Modules without
// endpoints are included only when includeEmpty is set. Build never fails: a
// module whose scan panics contributes no endpoints.
func (b *Builder) Build(project host.Project, includeEmpty bool) *Catalog {
	if b == nil || b.host == nil {
		return newCatalog(0)
	}

	modules := b.host.ListModules(project)
	results := make([]moduleResult, len(modules))

	var g errgroup.Group
	g.SetLimit(b.workers)
	for i, m := range modules {
		g.Go(func() error {
			results[i] = moduleResult{name: m.Name(), endpoints: b.scanModule(project, m)}
			return nil
		})
	}
	_ = g.Wait()

	cat := newCatalog(len(results))
	for _, r := range results {
		if len(r.endpoints) == 0 && !includeEmpty {
			continue
		}
		cat.add(r.name, r.endpoints)
	}
	return cat
}

// scanModule runs the dialects in precedence order and resolves the first
// non-empty result into endpoints.
func (b *Builder) scanModule(project host.Project, m host.Module) (endpoints []Endpoint) {
	logger := b.loggerFor(m.Name())
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("module scan aborted", "panic", fmt.Sprint(r))
			endpoints = nil
		}
	}()

	scope := b.host.ModuleScope(m, b.includeLibraries)
	if !b.host.Available(host.CapabilitySymbolIndex) {
		b.advisor.Advise(host.CapabilitySymbolIndex,
			"host is missing the symbol-index capability; no endpoints can be discovered")
		return nil
	}

	target := dialect.Target{Project: project, Module: m, Scope: scope}
	var (
		routes []route.Descriptor
		used   string
	)
	for _, s := range b.scanners {
		routes = s.Scan(target)
		if len(routes) > 0 {
			used = s.Name()
			break
		}
	}
	if len(routes) == 0 {
		logger.Debug("no routes")
		return nil
	}

	settings := b.resolver(logger).Resolve(project, scope)
	logger.Debug("module scanned", "dialect", used,
		"routes", len(routes), "protocol", settings.Protocol, "port", settings.Port)

	endpoints = make([]Endpoint, 0, len(routes))
	for _, r := range routes {
		endpoints = append(endpoints, Endpoint{
			Module:  m.Name(),
			Method:  r.Method,
			URL:     settings.URL(r.Path),
			Path:    r.Path,
			Handler: r.Handler(),
			Dialect: used,
		})
	}
	return endpoints
}

func (b *Builder) loggerFor(module string) *log.Logger {
	if b.moduleLogger != nil {
		if l := b.moduleLogger(module); l != nil {
			return l
		}
	}
	return b.logger.With("module", module)
}

func (b *Builder) resolver(logger *log.Logger) *appconfig.Resolver {
	return appconfig.NewResolver(b.host,
		appconfig.WithAdvisor(b.advisor),
		appconfig.WithLogger(logger),
	)
}

// ModuleSettings is the resolved server configuration of one module.
type ModuleSettings struct {
	Module string `json:"module"`
	appconfig.Settings
}

// ModuleSettings resolves the server settings of every module of project, in
// module enumeration order.
func (b *Builder) ModuleSettings(project host.Project) []ModuleSettings {
	if b == nil || b.host == nil {
		return nil
	}
	resolver := b.resolver(b.logger)
	var out []ModuleSettings
	for _, m := range b.host.ListModules(project) {
		scope := b.host.ModuleScope(m, b.includeLibraries)
		out = append(out, ModuleSettings{Module: m.Name(), Settings: resolver.Resolve(project, scope)})
	}
	return out
}
