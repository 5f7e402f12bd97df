package javaindex

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/restscope/cli/internal/annotation"
	"github.com/restscope/cli/internal/host"
)

// Sources lists the Java files of a search scope, in a stable order.
type Sources interface {
	SourceFiles(scope host.Scope) []string
}

// Index answers host.SymbolIndex queries from Java sources. It is safe for
// concurrent use.
type Index struct {
	sources Sources
	cache   *cache
	logger  *log.Logger

	mu      sync.Mutex
	symbols map[string]entry
}

// entry is what the index remembers about a symbol it has handed out.
type entry struct {
	site   site
	class  *TypeDecl
	method *MethodDecl
}

func (e entry) annotations() []Annotation {
	if e.method != nil {
		return e.method.Annotations
	}
	return e.class.Annotations
}

// Option configures an Index.
type Option func(*Index) error

// WithCacheSize sets the number of parsed files kept in memory.
func WithCacheSize(n int) Option {
	return func(idx *Index) error {
		c, err := newCache(n)
		if err != nil {
			return err
		}
		idx.cache = c
		return nil
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(idx *Index) error {
		if l != nil {
			idx.logger = l
		}
		return nil
	}
}

// New creates an index over sources.
func New(sources Sources, opts ...Option) (*Index, error) {
	idx := &Index{
		sources: sources,
		logger:  log.New(io.Discard),
		symbols: make(map[string]entry),
	}
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, fmt.Errorf("configuring java index: %w", err)
		}
	}
	if idx.cache == nil {
		c, err := newCache(DefaultCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating parse cache: %w", err)
		}
		idx.cache = c
	}
	return idx, nil
}

// CachedFiles returns the number of parsed files currently cached.
func (idx *Index) CachedFiles() int {
	return idx.cache.len()
}

// load parses every source file of scope.
func (idx *Index) load(scope host.Scope) []*File {
	paths := idx.sources.SourceFiles(scope)
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		if f := idx.cache.load(p); f != nil {
			files = append(files, f)
		}
	}
	idx.logger.Debug("java sources loaded", "scope", scope, "files", len(files))
	return files
}

// FindAnnotatedSymbols implements host.SymbolIndex. Types and methods are
// returned in file order, then source order.
func (idx *Index) FindAnnotatedSymbols(scope host.Scope, annotationName string) []host.Symbol {
	files := idx.load(scope)
	v := newView(files)

	var out []host.Symbol
	for _, f := range files {
		for _, td := range f.Types {
			out = idx.collect(out, site{view: v, file: f}, td, annotationName)
		}
	}
	return out
}

func (idx *Index) collect(out []host.Symbol, s site, td *TypeDecl, annotationName string) []host.Symbol {
	s.chain = append(append([]*TypeDecl(nil), s.chain...), td)

	classSym := idx.remember(classSymbol(s.file, td), entry{site: s, class: td})
	if annotated(s.file, td.Annotations, annotationName) {
		out = append(out, classSym)
	}
	for _, item := range td.Order {
		switch d := item.(type) {
		case *MethodDecl:
			if annotated(s.file, d.Annotations, annotationName) {
				out = append(out, idx.remember(methodSymbol(classSym, d), entry{site: s, class: td, method: d}))
			}
		case *TypeDecl:
			out = idx.collect(out, s, d, annotationName)
		}
	}
	return out
}

// AnnotationAttributes implements host.SymbolIndex.
func (idx *Index) AnnotationAttributes(sym host.Symbol, annotationName string) (map[string]annotation.Value, bool) {
	e, ok := idx.lookup(sym.ID)
	if !ok {
		return nil, false
	}
	for _, ann := range e.annotations() {
		if !matches(e.site.file, ann.Name, annotationName) {
			continue
		}
		attrs := make(map[string]annotation.Value, len(ann.Args))
		for key, expr := range ann.Args {
			attrs[key] = e.site.value(expr)
		}
		return attrs, true
	}
	return nil, false
}

// Members implements host.SymbolIndex.
func (idx *Index) Members(class host.Symbol) []host.Symbol {
	e, ok := idx.lookup(class.ID)
	if !ok || e.method != nil {
		return nil
	}
	out := make([]host.Symbol, 0, len(e.class.Methods))
	for _, m := range e.class.Methods {
		out = append(out, idx.remember(methodSymbol(class, m), entry{site: e.site, class: e.class, method: m}))
	}
	return out
}

func (idx *Index) remember(sym host.Symbol, e entry) host.Symbol {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.symbols[sym.ID] = e
	return sym
}

func (idx *Index) lookup(id string) (entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	e, ok := idx.symbols[id]
	return e, ok
}

func annotated(f *File, anns []Annotation, qualified string) bool {
	for _, a := range anns {
		if matches(f, a.Name, qualified) {
			return true
		}
	}
	return false
}

func classSymbol(f *File, td *TypeDecl) host.Symbol {
	return host.Symbol{
		ID:            f.Path + "!" + td.Qualified,
		Kind:          host.SymbolClass,
		Name:          td.Name,
		QualifiedName: td.Qualified,
		File:          f.Path,
		Line:          td.Line,
	}
}

func methodSymbol(class host.Symbol, m *MethodDecl) host.Symbol {
	return host.Symbol{
		ID:            fmt.Sprintf("%s#%s:%d", class.ID, m.Name, m.Line),
		Kind:          host.SymbolMethod,
		Name:          m.Name,
		QualifiedName: class.QualifiedName + "#" + m.Name,
		Owner:         class.ID,
		File:          class.File,
		Line:          m.Line,
	}
}

var _ host.SymbolIndex = (*Index)(nil)
