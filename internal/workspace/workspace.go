// Package workspace is the filesystem-backed host: it turns a directory tree
// into a project with modules, search scopes, configuration files and a Java
// symbol index.
package workspace

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/restscope/cli/internal/annotation"
	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/javaindex"
)

// BuildFiles mark a directory as a module root.
var BuildFiles = []string{"pom.xml", "build.gradle", "build.gradle.kts"}

// skipDirs are never searched, at any depth.
var skipDirs = map[string]bool{
	".git":         true,
	".idea":        true,
	".gradle":      true,
	"node_modules": true,
}

// outputDirs hold build output. They are pruned only directly below a module
// or scope root, so source packages with the same name are still searched.
var outputDirs = map[string]bool{
	"target": true,
	"build":  true,
	"out":    true,
	"bin":    true,
}

// Workspace is a project rooted at a directory. It implements host.Host.
type Workspace struct {
	root      string
	name      string
	libraries []string
	disabled  map[host.Capability]bool
	advisor   host.Advisor
	logger    *log.Logger
	cacheSize int

	modules []*Module
	index   *javaindex.Index
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLibraryPaths adds source roots that are searched only in
// library-inclusive scopes. Relative paths are resolved against the root.
func WithLibraryPaths(paths ...string) Option {
	return func(w *Workspace) {
		w.libraries = append(w.libraries, paths...)
	}
}

// WithoutCapability disables a host capability.
func WithoutCapability(c host.Capability) Option {
	return func(w *Workspace) {
		w.disabled[c] = true
	}
}

// WithAdvisor sets the sink for degraded-mode notices.
func WithAdvisor(a host.Advisor) Option {
	return func(w *Workspace) {
		if a != nil {
			w.advisor = a
		}
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithCacheSize sets the number of parsed Java files kept in memory.
func WithCacheSize(n int) Option {
	return func(w *Workspace) {
		w.cacheSize = n
	}
}

// Open detects the modules under root.
func Open(root string, opts ...Option) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return nil, oerrors.NewNotFoundError("project directory does not exist", abs,
			"Pass the root of a Maven or Gradle project")
	case os.IsPermission(err):
		return nil, oerrors.NewPermissionError("project directory is not readable", abs, "")
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	case !info.IsDir():
		return nil, oerrors.NewNotFoundError("project path is not a directory", abs,
			"Pass the root of a Maven or Gradle project")
	}

	w := &Workspace{
		root:     abs,
		name:     filepath.Base(abs),
		disabled: make(map[host.Capability]bool),
		advisor:  host.NopAdvisor,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	for i, lib := range w.libraries {
		if !filepath.IsAbs(lib) {
			w.libraries[i] = filepath.Join(abs, lib)
		}
	}

	w.modules, err = detectModules(abs)
	if err != nil {
		return nil, err
	}
	w.index, err = javaindex.New(w, javaindex.WithCacheSize(w.cacheSize), javaindex.WithLogger(w.logger))
	if err != nil {
		return nil, err
	}

	w.logger.Debug("workspace opened", "root", abs, "modules", len(w.modules), "libraries", len(w.libraries))
	return w, nil
}

// Name implements host.Project.
func (w *Workspace) Name() string { return w.name }

// Root returns the absolute project directory.
func (w *Workspace) Root() string { return w.root }

// Available implements host.Capabilities.
func (w *Workspace) Available(c host.Capability) bool { return !w.disabled[c] }

// Modules returns the detected modules in enumeration order.
func (w *Workspace) Modules() []*Module { return w.modules }

// ListModules implements host.ModuleLister.
func (w *Workspace) ListModules(host.Project) []host.Module {
	out := make([]host.Module, 0, len(w.modules))
	for _, m := range w.modules {
		out = append(out, m)
	}
	return out
}

// ModuleScope implements host.ModuleLister.
func (w *Workspace) ModuleScope(m host.Module, includeLibraries bool) host.Scope {
	mod, ok := m.(*Module)
	if !ok {
		return &Scope{name: m.Name()}
	}
	s := &Scope{
		name:  mod.name,
		roots: []root{{dir: mod.dir, exclude: mod.nested}},
	}
	if includeLibraries {
		s.libraries = true
		for _, lib := range w.libraries {
			s.roots = append(s.roots, root{dir: lib})
		}
	}
	return s
}

// FindAnnotatedSymbols implements host.SymbolIndex.
func (w *Workspace) FindAnnotatedSymbols(scope host.Scope, annotationName string) []host.Symbol {
	if !w.symbolsAvailable() {
		return nil
	}
	return w.index.FindAnnotatedSymbols(scope, annotationName)
}

// AnnotationAttributes implements host.SymbolIndex.
func (w *Workspace) AnnotationAttributes(sym host.Symbol, annotationName string) (map[string]annotation.Value, bool) {
	if !w.symbolsAvailable() {
		return nil, false
	}
	return w.index.AnnotationAttributes(sym, annotationName)
}

// Members implements host.SymbolIndex.
func (w *Workspace) Members(class host.Symbol) []host.Symbol {
	if !w.symbolsAvailable() {
		return nil
	}
	return w.index.Members(class)
}

func (w *Workspace) symbolsAvailable() bool {
	if w.Available(host.CapabilitySymbolIndex) {
		return true
	}
	w.advisor.Advise(host.CapabilitySymbolIndex, "the Java symbol index is disabled; no endpoints can be discovered")
	return false
}

// SourceFiles implements javaindex.Sources.
func (w *Workspace) SourceFiles(scope host.Scope) []string {
	var out []string
	walkScope(scope, func(path string) {
		if strings.HasSuffix(path, ".java") {
			out = append(out, path)
		}
	})
	return out
}

// detectModules returns every directory holding a build file, or the root
// itself when there is none.
func detectModules(rootDir string) ([]*Module, error) {
	var dirs []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootDir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if parent := filepath.Dir(path); path != rootDir && outputDirs[d.Name()] &&
			(parent == rootDir || hasBuildFile(parent)) {
			return filepath.SkipDir
		}
		if hasBuildFile(path) {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("detecting modules under %s: %w", rootDir, err)
	}
	if len(dirs) == 0 {
		dirs = []string{rootDir}
	}

	modules := make([]*Module, 0, len(dirs))
	counts := make(map[string]int)
	for _, dir := range dirs {
		rel, _ := filepath.Rel(rootDir, dir)
		m := &Module{name: filepath.Base(dir), dir: dir, rel: filepath.ToSlash(rel)}
		counts[m.name]++
		for _, other := range dirs {
			if other != dir && strings.HasPrefix(other, dir+string(filepath.Separator)) {
				m.nested = append(m.nested, other)
			}
		}
		modules = append(modules, m)
	}
	for _, m := range modules {
		if counts[m.name] > 1 {
			m.name = m.rel
		}
	}
	return modules, nil
}

func hasBuildFile(dir string) bool {
	for _, name := range BuildFiles {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

func skipDir(name string) bool {
	return skipDirs[name] || strings.HasPrefix(name, ".")
}

// outputDir reports whether path is a build output directory directly below
// root.
func outputDir(root, path string) bool {
	return outputDirs[filepath.Base(path)] && filepath.Dir(path) == root
}

var _ host.Host = (*Workspace)(nil)
